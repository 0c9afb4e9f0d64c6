package cmd

import "fmt"

type mockOutputInterface struct {
	calls []call
}

type call struct {
	method string
	args   []any
}

func (m *mockOutputInterface) Info(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Info", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) Error(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Error", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) Success(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Success", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) Warning(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Warning", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) KeyValue(key, value string) {
	m.calls = append(m.calls, call{method: "KeyValue", args: []any{key, value}})
}
func (m *mockOutputInterface) ParamTable(values map[string]string, reveal bool) {
	m.calls = append(m.calls, call{method: "ParamTable", args: []any{values, reveal}})
}
func (m *mockOutputInterface) Println(a ...any) {
	m.calls = append(m.calls, call{method: "Println", args: a})
}
func (m *mockOutputInterface) Bold(text string) string {
	return text
}

func (m *mockOutputInterface) methodCalls(method string) []call {
	var out []call
	for _, c := range m.calls {
		if c.method == method {
			out = append(out, c)
		}
	}
	return out
}
