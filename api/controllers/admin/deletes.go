package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/multistore-admin/api/responses"
	"github.com/angelmondragon/multistore-admin/api/validators"
	internaladmin "github.com/angelmondragon/multistore-admin/internal/admin"
	pkgerrors "github.com/angelmondragon/multistore-admin/pkg/errors"
	"github.com/angelmondragon/multistore-admin/pkg/logger"
)

const maxIDLength = 128

type deleteVendorRequest struct {
	UserID string `json:"userID" validate:"required,max=128"`
}

// DeleteProduct removes a product by path id. Unknown ids answer 404.
func DeleteProduct(svc internaladmin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := validators.SanitizeString(chi.URLParam(r, "productId"), maxIDLength)
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}
		if err := svc.DeleteProduct(r.Context(), productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": true, "productId": productID})
	}
}

// DeleteVendor cascades the removal of a vendor and everything its stores own.
// A vendor with nothing left to remove still answers 200 with zero counts.
func DeleteVendor(svc internaladmin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteVendorRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.DeleteVendor(r.Context(), validators.SanitizeString(req.UserID, maxIDLength))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": result, "total": result.Total()})
	}
}
