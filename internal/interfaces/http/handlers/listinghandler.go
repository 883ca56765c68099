package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estately-inc/estately/internal/application/listing/querybuilder"
	"github.com/estately-inc/estately/internal/application/listing/usecases"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/constants"
	"github.com/estately-inc/estately/internal/shared/errors"
	"github.com/estately-inc/estately/internal/shared/logger"
	"github.com/estately-inc/estately/internal/shared/utils"
)

// ListingHandlerDeps groups the use cases served by ListingHandler.
type ListingHandlerDeps struct {
	List        usecases.ListListingsExecutor
	Count       usecases.CountListingsExecutor
	Featured    usecases.FeaturedListingsExecutor
	Get         usecases.GetListingExecutor
	Create      usecases.CreateListingExecutor
	Update      usecases.UpdateListingExecutor
	Cancel      usecases.CancelListingExecutor
	MarkSold    usecases.MarkSoldExecutor
	Delete      usecases.DeleteListingExecutor
	Moderate    usecases.ModerateListingExecutor
	SetStatus   usecases.SetStatusExecutor
	SetPremium  usecases.SetPremiumExecutor
	Stats       usecases.ListingStatsExecutor
	DeleteOwned usecases.DeleteUserListingsExecutor
}

type ListingHandler struct {
	deps   ListingHandlerDeps
	logger logger.Interface
}

func NewListingHandler(deps ListingHandlerDeps, logger logger.Interface) *ListingHandler {
	return &ListingHandler{
		deps:   deps,
		logger: logger,
	}
}

// LocationRequest accepts either explicit coordinates or a [lat, lng] pair.
// value is the older name of label.
type LocationRequest struct {
	Label     string    `json:"label"`
	Value     string    `json:"value"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	LatLng    []float64 `json:"latlng"`
}

func (r *LocationRequest) toInput() *listing.LocationInput {
	if r == nil {
		return nil
	}
	in := &listing.LocationInput{
		Label:     r.Label,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
	if strings.TrimSpace(in.Label) == "" {
		in.Label = r.Value
	}
	if len(r.LatLng) == 2 {
		if in.Latitude == nil {
			lat := r.LatLng[0]
			in.Latitude = &lat
		}
		if in.Longitude == nil {
			lng := r.LatLng[1]
			in.Longitude = &lng
		}
	}
	return in
}

// ListingRequest is the body of create and update. Numeric fields accept
// numbers or numeric strings. An update replaces every field except
// featureType, which keeps its current value when omitted.
type ListingRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ImageSrc    listing.Images   `json:"imageSrc"`
	Address     string           `json:"address"`
	Features    string           `json:"features"`
	Category    string           `json:"category"`
	ListingType string           `json:"listingType"`
	FeatureType string           `json:"featureType"`
	Location    *LocationRequest `json:"location"`
	Price       listing.FlexInt  `json:"price"`
	Area        listing.FlexInt  `json:"area"`
	Bedrooms    listing.FlexInt  `json:"bedrooms"`
	Bathrooms   listing.FlexInt  `json:"bathrooms"`
}

func (r *ListingRequest) ToFields() listing.Fields {
	return listing.Fields{
		Title:       r.Title,
		Description: r.Description,
		ImageSrc:    []string(r.ImageSrc),
		Address:     r.Address,
		Features:    r.Features,
		Category:    r.Category,
		ListingType: r.ListingType,
		FeatureType: r.FeatureType,
		Location:    r.Location.toInput(),
		Price:       r.Price.Ptr(),
		Area:        r.Area.Ptr(),
		Bedrooms:    r.Bedrooms.Ptr(),
		Bathrooms:   r.Bathrooms.Ptr(),
	}
}

type ModerateListingRequest struct {
	Decision string `json:"decision" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetPremiumRequest struct {
	IsPremium *bool `json:"isPremium" binding:"required"`
}

// ListListings serves the public browse page.
func (h *ListingHandler) ListListings(c *gin.Context) {
	h.list(c, false)
}

// ListMyListings serves the owner's own listings in every status.
func (h *ListingHandler) ListMyListings(c *gin.Context) {
	h.list(c, true)
}

func (h *ListingHandler) list(c *gin.Context, ownerScoped bool) {
	query := usecases.ListListingsQuery{
		Params:      parseFilterParams(c),
		Actor:       authorization.ActorFromContext(c),
		OwnerScoped: ownerScoped,
	}

	result, err := h.deps.List.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.Window)
}

func (h *ListingHandler) CountListings(c *gin.Context) {
	query := usecases.CountListingsQuery{
		Params: parseFilterParams(c),
		Actor:  authorization.ActorFromContext(c),
	}

	count, err := h.deps.Count.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"count": count})
}

func (h *ListingHandler) FeaturedListings(c *gin.Context) {
	query := usecases.FeaturedListingsQuery{
		Category: c.Query("category"),
		Limit:    utils.QueryInt(c, "limit", constants.DefaultFeaturedLimit),
	}

	items, err := h.deps.Featured.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	listingID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deps.Get.Execute(c.Request.Context(), usecases.GetListingQuery{
		ID:    listingID,
		Actor: authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ListingHandler) GetListingBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("slug is required"))
		return
	}

	result, err := h.deps.Get.Execute(c.Request.Context(), usecases.GetListingQuery{
		Slug:  slug,
		Actor: authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create listing", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.deps.Create.Execute(c.Request.Context(), usecases.CreateListingCommand{
		Actor:  authorization.ActorFromContext(c),
		Fields: req.ToFields(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Listing created successfully")
}

func (h *ListingHandler) UpdateListing(c *gin.Context) {
	listingID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update listing",
			"listing_id", listingID,
			"error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.deps.Update.Execute(c.Request.Context(), usecases.UpdateListingCommand{
		Actor:     authorization.ActorFromContext(c),
		ListingID: listingID,
		Fields:    req.ToFields(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Listing updated successfully"
	if result.StatusReset {
		message = "Listing updated and sent back for review"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result.Listing)
}

func (h *ListingHandler) CancelListing(c *gin.Context) {
	listingID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deps.Cancel.Execute(c.Request.Context(), usecases.CancelListingCommand{
		Actor:     authorization.ActorFromContext(c),
		ListingID: listingID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Listing canceled", result)
}

func (h *ListingHandler) MarkSold(c *gin.Context) {
	listingID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deps.MarkSold.Execute(c.Request.Context(), usecases.MarkSoldCommand{
		Actor:     authorization.ActorFromContext(c),
		ListingID: listingID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Listing marked as sold", result)
}

func (h *ListingHandler) DeleteListing(c *gin.Context) {
	listingID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deps.Delete.Execute(c.Request.Context(), usecases.DeleteListingCommand{
		Actor:     authorization.ActorFromContext(c),
		ListingID: listingID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"deleted": result.Deleted})
}

func (h *ListingHandler) ModerateListing(c *gin.Context) {
	listingID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ModerateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.deps.Moderate.Execute(c.Request.Context(), usecases.ModerateListingCommand{
		Actor:     authorization.ActorFromContext(c),
		ListingID: listingID,
		Decision:  req.Decision,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Listing moderated", result)
}

func (h *ListingHandler) SetStatus(c *gin.Context) {
	listingID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.deps.SetStatus.Execute(c.Request.Context(), usecases.SetStatusCommand{
		Actor:     authorization.ActorFromContext(c),
		ListingID: listingID,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Listing status updated", result)
}

func (h *ListingHandler) SetPremium(c *gin.Context) {
	listingID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetPremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.deps.SetPremium.Execute(c.Request.Context(), usecases.SetPremiumCommand{
		Actor:     authorization.ActorFromContext(c),
		ListingID: listingID,
		IsPremium: *req.IsPremium,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Listing premium flag updated", result)
}

func (h *ListingHandler) GetStats(c *gin.Context) {
	result, err := h.deps.Stats.Execute(c.Request.Context(), usecases.ListingStatsQuery{
		Actor: authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ListingHandler) DeleteUserListings(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deps.DeleteOwned.Execute(c.Request.Context(), usecases.DeleteUserListingsCommand{
		Actor:  authorization.ActorFromContext(c),
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"deleted": result.Deleted})
}

// parseFilterParams copies browse parameters verbatim; the query builder
// decides what each one means.
func parseFilterParams(c *gin.Context) querybuilder.FilterParams {
	showAll, _ := strconv.ParseBool(c.Query("showAll"))

	return querybuilder.FilterParams{
		Category:      c.Query("category"),
		LocationValue: c.Query("location_value"),
		Title:         c.Query("title"),
		MinPrice:      c.Query("min_price"),
		MinPriceAlt:   c.Query("minPrice"),
		MaxPrice:      c.Query("max_price"),
		MaxPriceAlt:   c.Query("maxPrice"),
		Bedrooms:      c.Query("bedrooms"),
		Bathrooms:     c.Query("bathrooms"),
		ListingType:   c.Query("listingType"),
		FeatureType:   c.Query("featureType"),
		Page:          c.Query("page"),
		PageSize:      c.Query("pageSize"),
		Status:        c.Query("status"),
		ShowAll:       showAll,
	}
}
