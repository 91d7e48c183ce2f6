package logging

import (
	"postline/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.SugaredLogger = zap.NewNop().Sugar()

func Init() {
	var zapConfig zap.Config
	if config.DEBUG_MODE {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	logger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}
	Logger = logger.Sugar()
}
