package pkg

import "go.uber.org/zap"

var Log *zap.SugaredLogger

// InitLogger debug 模式下用开发配置（彩色、DEBUG 级别）
func InitLogger(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l.Sugar()
	return nil
}
