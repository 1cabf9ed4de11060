package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks registered with fx.
const DefaultTimeout = 30 * time.Second
