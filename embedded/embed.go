// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// IconIdle - иконка в состоянии ожидания (серая).
//
//go:embed icon_idle.png
var IconIdle []byte

// IconWorking - иконка во время замены выделения (оранжевая).
//
//go:embed icon_working.png
var IconWorking []byte
