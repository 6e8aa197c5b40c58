package main

import "go.uber.org/zap"

var sendLog = zap.NewNop()
var sceneLog = zap.NewNop()

func enableDebugLogging(l *zap.Logger) {
	sendLog = l
	sceneLog = l
}
