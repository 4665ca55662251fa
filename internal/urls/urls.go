// Package urls holds documentation links shown in command help and hints.
package urls

// ZHAIntegration is the Home Assistant ZHA integration page, including how to
// turn on debug logging for the Zigbee libraries.
const ZHAIntegration = "https://www.home-assistant.io/integrations/zha/"

// LoggerIntegration documents the logger: section used to raise zigpy and
// zigpy_znp to debug level so frame lines appear in the log at all.
const LoggerIntegration = "https://www.home-assistant.io/integrations/logger/"
