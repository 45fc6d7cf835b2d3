/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mocklogger contains a mocked logger that can be used for testing.
package mocklogger

import (
	"fmt"

	"github.com/seraph-id/sdk-go/pkg/common/log"
)

// MockLogger is a mocked logger that records logged lines for assertions.
type MockLogger struct {
	AllLogContents   string
	DebugLogContents string
	InfoLogContents  string
	WarnLogContents  string
	ErrorLogContents string
}

// Fatalf mocked logging of a fatal line.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.AllLogContents += fmt.Sprintf(msg, args...)
}

// Panicf mocked logging of a panic line.
func (m *MockLogger) Panicf(msg string, args ...interface{}) {
	m.AllLogContents += fmt.Sprintf(msg, args...)
}

// Debugf mocked logging of a debug line.
func (m *MockLogger) Debugf(msg string, args ...interface{}) {
	m.DebugLogContents += fmt.Sprintf(msg, args...)
	m.AllLogContents += fmt.Sprintf(msg, args...)
}

// Infof mocked logging of an info line.
func (m *MockLogger) Infof(msg string, args ...interface{}) {
	m.InfoLogContents += fmt.Sprintf(msg, args...)
	m.AllLogContents += fmt.Sprintf(msg, args...)
}

// Warnf mocked logging of a warning line.
func (m *MockLogger) Warnf(msg string, args ...interface{}) {
	m.WarnLogContents += fmt.Sprintf(msg, args...)
	m.AllLogContents += fmt.Sprintf(msg, args...)
}

// Errorf mocked logging of an error line.
func (m *MockLogger) Errorf(msg string, args ...interface{}) {
	m.ErrorLogContents += fmt.Sprintf(msg, args...)
	m.AllLogContents += fmt.Sprintf(msg, args...)
}

// Provider is a mock logger provider that can be used for testing.
type Provider struct {
	MockLogger *MockLogger
}

// GetLogger returns the underlying mock logger.
func (p *Provider) GetLogger(string) log.Logger {
	return p.MockLogger
}
