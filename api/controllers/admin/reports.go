package admin

import (
	"net/http"

	"github.com/angelmondragon/multistore-admin/api/responses"
	"github.com/angelmondragon/multistore-admin/api/validators"
	internaladmin "github.com/angelmondragon/multistore-admin/internal/admin"
	"github.com/angelmondragon/multistore-admin/pkg/config"
	"github.com/angelmondragon/multistore-admin/pkg/enums"
	"github.com/angelmondragon/multistore-admin/pkg/logger"
)

const maxRankingLimit = 50

// Overview returns the dashboard counters.
func Overview(svc internaladmin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, overview)
	}
}

// OrderTrend returns order counts bucketed by day or month. range defaults to 7d.
func OrderTrend(svc internaladmin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := validators.ParseQueryValue(r, "range", enums.OrderTrendRange7d, enums.ParseOrderTrendRange)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		points, err := svc.OrderTrend(r.Context(), rng)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, points)
	}
}

// RevenueTrend returns monthly revenue. range defaults to 6m.
func RevenueTrend(svc internaladmin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := validators.ParseQueryValue(r, "range", enums.RevenueTrendRange6m, enums.ParseRevenueTrendRange)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		points, err := svc.RevenueTrend(r.Context(), rng)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, points)
	}
}

func TopVendors(svc internaladmin.Service, cfg config.ReportsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", defaultLimit(cfg.TopVendors, 5), 1, maxRankingLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ranked, err := svc.TopVendors(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, ranked)
	}
}

func TopCustomers(svc internaladmin.Service, cfg config.ReportsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", defaultLimit(cfg.TopCustomers, 5), 1, maxRankingLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ranked, err := svc.TopCustomers(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, ranked)
	}
}

func TopProducts(svc internaladmin.Service, cfg config.ReportsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", defaultLimit(cfg.TopProducts, 3), 1, maxRankingLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ranked, err := svc.TopProducts(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, ranked)
	}
}

// ProductChart returns the per-vendor product counts and the stock split.
func ProductChart(svc internaladmin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chart, err := svc.ProductChart(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, chart)
	}
}

func defaultLimit(configured, fallback int) int {
	if configured < 1 || configured > maxRankingLimit {
		return fallback
	}
	return configured
}
