package wrapper

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "wrapper")
