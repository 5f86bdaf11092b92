// internal/controller/catalog_controller.go
package controller

import (
	"net/http"

	"github.com/barbercloud/barber-backend/internal/repository"
)

// CatalogController serves the immutable reference data: barbers and services.
type CatalogController struct {
	BarberRepo  repository.BarberRepositoryInterface
	ServiceRepo repository.ServiceRepositoryInterface
}

func (c *CatalogController) ListBarbers(w http.ResponseWriter, r *http.Request) {
	barbers, err := c.BarberRepo.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"barbieri": barbers})
}

func (c *CatalogController) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := c.ServiceRepo.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"servizi": services})
}
