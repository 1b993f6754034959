package netcomponents

import "github.com/yohamta/donburi"

type NetSimStateData struct {
	Frame       uint64
	Projectiles int
	Shots       int
	Impacts     int
	Kills       int
}

var NetSimState = donburi.NewComponentType[NetSimStateData]()
