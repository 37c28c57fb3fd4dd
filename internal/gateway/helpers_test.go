package gateway

import "github.com/bako110/pausemanager/internal/models"

func testServicePatch() models.Service {
	return models.Service{Title: "Pause premium", Price: "7,50"}
}
