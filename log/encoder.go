package log

import (
	"go.uber.org/zap/zapcore"
)

type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
)

// OutputEncoder converts an encoder config to a zap encoder,
// the optional value is JsonOutputEncoder ConsoleOutputEncoder
type OutputEncoder func(config zapcore.EncoderConfig) zapcore.Encoder

func JsonOutputEncoder(config zapcore.EncoderConfig) zapcore.Encoder {
	return zapcore.NewJSONEncoder(config)
}

func ConsoleOutputEncoder(config zapcore.EncoderConfig) zapcore.Encoder {
	return zapcore.NewConsoleEncoder(config)
}

type LevelEncoder func(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder)

func BracketLevelEncoder(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
	encoder.AppendString("[" + level.CapitalString() + "]")
}

func CapitalLevelEncoder(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
	encoder.AppendString(level.CapitalString())
}

type CallerEncoder func(caller zapcore.EntryCaller, encoder zapcore.PrimitiveArrayEncoder)

func ShortCallerEncoder(caller zapcore.EntryCaller, encoder zapcore.PrimitiveArrayEncoder) {
	encoder.AppendString(caller.TrimmedPath())
}
