package bench

import "github.com/privacybydesign/timelock"

var Logger = timelock.Logger
