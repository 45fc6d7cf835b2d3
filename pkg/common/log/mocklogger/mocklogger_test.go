/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocklogger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seraph-id/sdk-go/pkg/common/log"
	"github.com/seraph-id/sdk-go/pkg/common/log/mocklogger"
)

var (
	_ log.Logger         = (*mocklogger.MockLogger)(nil)
	_ log.LoggerProvider = (*mocklogger.Provider)(nil)
)

func TestMockLogger(t *testing.T) {
	logger := &mocklogger.MockLogger{}

	logger.Debugf("debug %s", "details")
	logger.Infof("info %s", "details")
	logger.Warnf("warn %s", "details")
	logger.Errorf("error %s", "details")
	logger.Panicf("panic %s", "details")
	logger.Fatalf("fatal %s", "details")

	require.Equal(t, "debug details", logger.DebugLogContents)
	require.Equal(t, "info details", logger.InfoLogContents)
	require.Equal(t, "warn details", logger.WarnLogContents)
	require.Equal(t, "error details", logger.ErrorLogContents)
	require.Contains(t, logger.AllLogContents, "debug details")
	require.Contains(t, logger.AllLogContents, "info details")
	require.Contains(t, logger.AllLogContents, "warn details")
	require.Contains(t, logger.AllLogContents, "error details")
	require.Contains(t, logger.AllLogContents, "panic details")
	require.Contains(t, logger.AllLogContents, "fatal details")
}

func TestProvider(t *testing.T) {
	provider := &mocklogger.Provider{MockLogger: &mocklogger.MockLogger{}}

	logger := provider.GetLogger("any-module")
	logger.Warnf("something to %s about", "worry")

	require.Equal(t, "something to worry about", provider.MockLogger.WarnLogContents)
}
