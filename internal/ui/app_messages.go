package ui

import (
	"widgetlab/internal/loader"
	"widgetlab/internal/resource"

	"github.com/google/uuid"
)

// SelectModeMsg switches to a tab (SPC 1..6).
type SelectModeMsg struct {
	Mode AppMode
}

// ShiftModeMsg moves Delta tabs (tab / shift+tab).
type ShiftModeMsg struct {
	Delta int
}

// RemountAsyncMsg tears the async widget down and mounts a new instance,
// which issues a fresh request (SPC r).
type RemountAsyncMsg struct{}

// UserFetchedMsg carries a fetch completion to the AsyncView instance that
// issued it. Other instances ignore it.
type UserFetchedMsg struct {
	InstanceID uuid.UUID
	Result     loader.Result[resource.User]
}
