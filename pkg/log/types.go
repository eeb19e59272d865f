package log

import (
	"github.com/sirupsen/logrus"
)

// Fields logrus.Fields의 별칭입니다.
type Fields = logrus.Fields

// Entry logrus.Entry의 별칭입니다.
type Entry = logrus.Entry

// Hook logrus.Hook의 별칭입니다.
type Hook = logrus.Hook

// Formatter logrus.Formatter의 별칭입니다.
type Formatter = logrus.Formatter

var allLevels = logrus.AllLevels
