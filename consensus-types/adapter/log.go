package adapter

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "adapter")
