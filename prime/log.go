package prime

import "github.com/sirupsen/logrus"

var Logger = logrus.StandardLogger()
