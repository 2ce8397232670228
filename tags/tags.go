package tags

import "github.com/yohamta/donburi"

var (
	Session = donburi.NewTag().SetName("Session")
	Camera  = donburi.NewTag().SetName("Camera")
	Ending  = donburi.NewTag().SetName("Ending")
)
