package neta

import "github.com/katalvlaran/neta/log"

// logger is the module logger of the matching engine.
var logger = log.NewModuleLogger("neta")
