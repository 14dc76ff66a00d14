package log

import (
	"os"
	"sync"

	"github.com/abhissng/axon/utils/helpers"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log struct holds the zap Logger instance.
type Log struct {
	*zap.Logger
	mu       sync.Mutex   // Mutex for thread-safe logging
	closeLog func() error // Function to gracefully shut down the logger
}

// NewBasicLogger creates a basic logger for utility functions carrying the default configuration.
func NewBasicLogger(isProd bool) *Log {
	basicLogger, _ := NewLogger(NewLoggerConfig(isProd))
	return &Log{
		Logger: basicLogger.Logger,
		closeLog: func() error {
			return basicLogger.Sync()
		},
	}
}

// NewLogger creates a new Log instance with the specified log level and options.
func NewLogger(cfg *LoggerConfig) (*Log, error) {

	// Set the log level
	atomicLevel := zap.NewAtomicLevel()
	if cfg.IsProd {
		atomicLevel.SetLevel(zapcore.InfoLevel)
	} else {
		atomicLevel.SetLevel(zapcore.DebugLevel) // Debug mode for development
	}

	// Configure encoder settings
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "log",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		EncodeLevel: func() zapcore.LevelEncoder {
			if cfg.IsProd {
				return zapcore.CapitalLevelEncoder
			}
			return zapcore.CapitalColorLevelEncoder
		}(), // INFO, WARN, ERROR (readable)
		EncodeTime:     zapcore.ISO8601TimeEncoder, // 2025-02-22T13:43:42.977+0530
		EncodeCaller:   helpers.TailCallerEncoder(cfg.EncoderTailLength),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	defaultOptions := []zap.Option{
		zap.Fields(
			zap.String("environment", cfg.Environment),
			zap.String("service", cfg.ServiceName),
		),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	}
	options := append(defaultOptions, cfg.ZapOptions...)

	// Select the encoder based on mode
	var encoder zapcore.Encoder
	if cfg.IsProd {
		encoder = zapcore.NewJSONEncoder(encoderConfig) // JSON logs for production
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig) // Readable console logs
	}

	// Setup log output (stdout by default, rotated file when configured)
	logOutput := zapcore.AddSync(os.Stdout)
	if cfg.RotationFile != "" {
		logOutput = zapcore.NewMultiWriteSyncer(
			zapcore.AddSync(os.Stdout),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.RotationFile,
				MaxSize:    cfg.RotationMaxSizeMB,
				MaxBackups: cfg.RotationMaxBackups,
				MaxAge:     cfg.RotationMaxAgeDays,
				Compress:   true,
			}),
		)
	}

	// Create the logger core
	core := zapcore.NewCore(encoder, logOutput, atomicLevel)

	// Build the logger with additional options
	l := zap.New(core, options...)

	return &Log{Logger: l}, nil
}

// Close gracefully shuts down the logger.
func (l *Log) Close() error {
	if l.closeLog != nil {
		return l.closeLog()
	}
	return l.Sync()
}

// SafeLog ensures thread-safe logging.
func (l *Log) SafeLog(level zapcore.Level, msg string, fields ...zap.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch level {
	case zap.DebugLevel:
		l.Logger.Debug(msg, fields...)
	case zap.InfoLevel:
		l.Logger.Info(msg, fields...)
	case zap.WarnLevel:
		l.Logger.Warn(msg, fields...)
	case zap.ErrorLevel:
		l.Logger.Error(msg, fields...)
	case zap.FatalLevel:
		l.Logger.Fatal(msg, fields...)
	}
}

// Debug logs a message at the DebugLevel.
func (l *Log) Debug(msg string, fields ...zap.Field) {
	l.Logger.Debug(msg, fields...)
}

// Info logs a message at the InfoLevel.
func (l *Log) Info(msg string, fields ...zap.Field) {
	l.Logger.Info(msg, fields...)
}

// Warn logs a message at the WarnLevel.
func (l *Log) Warn(msg string, fields ...zap.Field) {
	l.Logger.Warn(msg, fields...)
}

// Error logs a message at the ErrorLevel.
func (l *Log) Error(msg string, fields ...zap.Field) {
	l.Logger.Error(msg, fields...)
}

// Fatal logs a message at the FatalLevel and then exits the program.
func (l *Log) Fatal(msg string, fields ...zap.Field) {
	l.Logger.Fatal(msg, fields...)
}

// With creates a child Log with the specified fields.
func (l *Log) With(fields ...zap.Field) *Log {
	return &Log{Logger: l.Logger.With(fields...)}
}

// LoggerConfig holds the logger construction settings.
type LoggerConfig struct {
	// IsProd enables production mode (JSON output, Info level)
	IsProd bool

	// ZapOptions are the standard zap logger options
	ZapOptions []zap.Option

	// ServiceName overrides the default service name
	ServiceName string

	// Environment overrides the default environment
	Environment string

	// EncoderTailLength overrides the default encoder tail length
	EncoderTailLength int

	// RotationFile enables lumberjack file rotation when non-empty
	RotationFile       string
	RotationMaxSizeMB  int
	RotationMaxBackups int
	RotationMaxAgeDays int
}

// LoggerOption defines a function that modifies LoggerConfig
type LoggerOption func(*LoggerConfig)

// NewLoggerConfig creates a new LoggerConfig with default values
func NewLoggerConfig(isProd bool, opts ...LoggerOption) *LoggerConfig {
	cfg := &LoggerConfig{
		ServiceName: helpers.GetServiceName(),
		Environment: helpers.GetEnvironment(),
		IsProd:      isProd,
	}

	// Apply all options
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithZapOptions adds zap logger options
func WithZapOptions(opts ...zap.Option) LoggerOption {
	return func(c *LoggerConfig) {
		if c.ZapOptions == nil {
			c.ZapOptions = make([]zap.Option, 0)
		}
		c.ZapOptions = append(c.ZapOptions, opts...)
	}
}

// WithServiceName sets the service name
func WithServiceName(name string) LoggerOption {
	return func(c *LoggerConfig) {
		if name != "" {
			c.ServiceName = name
		}
	}
}

// WithEnvironment sets the environment
func WithEnvironment(env string) LoggerOption {
	return func(c *LoggerConfig) {
		if env != "" {
			c.Environment = env
		}
	}
}

// WithRotation enables file rotation for the given file path.
func WithRotation(file string, maxSizeMB, maxBackups, maxAgeDays int) LoggerOption {
	return func(c *LoggerConfig) {
		c.RotationFile = file
		c.RotationMaxSizeMB = maxSizeMB
		c.RotationMaxBackups = maxBackups
		c.RotationMaxAgeDays = maxAgeDays
	}
}

// WithEncoderTailLength sets the encoder tail length
func WithEncoderTailLength(length int) LoggerOption {
	return func(c *LoggerConfig) {
		if length > 0 {
			// Values <= 2 don't provide meaningful context beyond short encoder
			if length <= 2 {
				length = 0 // to call short encoder directly
			}
			// Cap at 7 to prevent excessively long caller paths
			if length > 7 {
				length = 7
			}
			c.EncoderTailLength = length
		}
	}
}
