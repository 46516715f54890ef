package properties

import "os"

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

func DiscordNotificationUrl() string {
	return os.Getenv("DISCORD_NOTIFICATION_URL")
}

type Color struct {
	R, G, B uint8
}

// SuitabilityColors maps water balance suitability classes to map colors.
// Class 0 is nodata.
var SuitabilityColors = map[int]Color{
	0: {40, 40, 40},
	1: {214, 69, 65},
	2: {244, 208, 63},
	3: {46, 139, 87},
}

// FeasibleColor and InfeasibleColor render boolean feasibility maps.
var (
	FeasibleColor   = Color{46, 139, 87}
	InfeasibleColor = Color{40, 40, 40}
)
