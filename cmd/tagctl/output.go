package main

import (
	"github.com/fatih/color"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func failure(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
