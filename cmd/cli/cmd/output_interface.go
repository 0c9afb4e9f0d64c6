package cmd

import "github.com/slackbridge/slackbridge/internal/output"

// OutputInterface defines the interface for output operations to enable dependency injection and testing.
type OutputInterface interface {
	Info(format string, a ...any)
	Error(format string, a ...any)
	Success(format string, a ...any)
	Warning(format string, a ...any)
	KeyValue(key, value string)
	ParamTable(values map[string]string, reveal bool)
	Println(a ...any)
	Bold(text string) string
}

// outputWrapper wraps the global output package functions to implement OutputInterface.
type outputWrapper struct{}

// NewOutputWrapper creates a new output wrapper that implements OutputInterface.
func NewOutputWrapper() OutputInterface {
	return &outputWrapper{}
}

func (o *outputWrapper) Info(format string, a ...any) {
	output.Info(format, a...)
}

func (o *outputWrapper) Error(format string, a ...any) {
	output.Error(format, a...)
}

func (o *outputWrapper) Success(format string, a ...any) {
	output.Success(format, a...)
}

func (o *outputWrapper) Warning(format string, a ...any) {
	output.Warning(format, a...)
}

func (o *outputWrapper) KeyValue(key, value string) {
	output.KeyValue(key, value)
}

func (o *outputWrapper) ParamTable(values map[string]string, reveal bool) {
	output.ParamTable(values, reveal)
}

func (o *outputWrapper) Println(a ...any) {
	output.Println(a...)
}

func (o *outputWrapper) Bold(text string) string {
	return output.Bold(text)
}
