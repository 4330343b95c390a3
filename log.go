package timelock

import (
	"github.com/privacybydesign/timelock/prime"
	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.StandardLogger()
	prime.Logger = Logger
}
