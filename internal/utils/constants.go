package utils

// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
const LoggerInitializationFailedMessageFormat = "initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes a fatal run error.
const ApplicationExecutionFailedMessage = "summarize failed"

// LogLevelEnvironmentVariable selects the zap level for the console logger.
const LogLevelEnvironmentVariable = "SUMMARIZE_LOG_LEVEL"
