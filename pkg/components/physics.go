package components

import "github.com/gonewx/deadzone/pkg/game"

// BodyComponent 持有实体的物理刚体句柄
type BodyComponent struct {
	Body game.Body
}

// NavAgentComponent 持有实体的寻路代理句柄
type NavAgentComponent struct {
	Agent game.NavAgent
}
