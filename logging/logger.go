package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global logrus instance.
var Logger = logrus.New()

var once sync.Once

// Init configures the global logger. When LOG_FILE is set, output goes to a
// size-rotated file; otherwise it goes to stdout.
func Init() {
	once.Do(func() {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Logger.SetLevel(logrus.InfoLevel)

		logFile := os.Getenv("LOG_FILE")
		if logFile == "" {
			Logger.SetOutput(os.Stdout)
			return
		}

		Logger.SetOutput(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
		Logger.Infof("Logger initialized, output to: %s", logFile)
	})
}
