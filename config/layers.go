package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer; nothing is drawn through layers headlessly.
const Default ecs.LayerID = 0
