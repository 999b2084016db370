package component

import "github.com/milk9111/scrollin/health"

type Health struct {
	Pool *health.System
}

var HealthComponent = NewComponent[Health]()
