package controllers

import (
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/test-kooza/rental-management-system-sub001/config"
	"github.com/test-kooza/rental-management-system-sub001/constants"
	"github.com/test-kooza/rental-management-system-sub001/dto"
	"github.com/test-kooza/rental-management-system-sub001/middleware"
	"github.com/test-kooza/rental-management-system-sub001/models"
	"github.com/test-kooza/rental-management-system-sub001/response"
	"github.com/test-kooza/rental-management-system-sub001/services"
	"github.com/test-kooza/rental-management-system-sub001/validator"
)

const propertiesCacheKey = "properties:all"

type PropertyController struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewPropertyController(db *gorm.DB, rdb *redis.Client) *PropertyController {
	return &PropertyController{db: db, rdb: rdb}
}

func convertToPropertyResponse(property *models.Property) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:                 property.ID,
		HostID:             property.HostID,
		Name:               property.Name,
		Description:        property.Description,
		Address:            property.Address,
		City:               property.City,
		Country:            property.Country,
		BasePrice:          services.FormatAmount(property.BasePrice, property.Currency),
		DiscountPercentage: property.DiscountPercentage,
		Currency:           property.Currency,
		MaxGuests:          property.MaxGuests,
		Bedrooms:           property.Bedrooms,
		Bathrooms:          property.Bathrooms,
		Avatar:             property.Avatar,
		Status:             property.Status,
		Rating:             property.Rating,
	}
}

// GetProperties lists active properties. A free-text `search` query ranks
// listings by fuzzy name/city match; `city` filters exactly.
func (pc *PropertyController) GetProperties(c *gin.Context) {
	page := 0
	limit := 10
	if parsedPage, err := strconv.Atoi(c.Query("page")); err == nil && parsedPage >= 0 {
		page = parsedPage
	}
	if parsedLimit, err := strconv.Atoi(c.Query("limit")); err == nil && parsedLimit > 0 {
		limit = parsedLimit
	}

	var allProperties []models.Property
	if pc.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, pc.rdb, propertiesCacheKey, &allProperties); err != nil {
			allProperties = nil
		}
	}

	if len(allProperties) == 0 {
		if err := pc.db.Where("status = ?", constants.PropertyStatusActive).
			Order("rating DESC").
			Find(&allProperties).Error; err != nil {
			response.ServerError(c)
			return
		}
		if pc.rdb != nil && len(allProperties) > 0 {
			_ = services.SetToRedis(config.Ctx, pc.rdb, propertiesCacheKey, allProperties, 10*time.Minute)
		}
	}

	cityFilter := c.Query("city")
	if cityFilter != "" {
		filtered := make([]models.Property, 0, len(allProperties))
		for _, p := range allProperties {
			if services.NormalizeQuery(p.City) == services.NormalizeQuery(cityFilter) {
				filtered = append(filtered, p)
			}
		}
		allProperties = filtered
	}

	if search := c.Query("search"); search != "" {
		query := services.NormalizeQuery(search)
		cityMatcher := services.NewCityMatcher(services.UniqueCities(allProperties))

		type scored struct {
			property models.Property
			score    int
		}
		var ranked []scored
		for _, p := range allProperties {
			if s := services.ScoreProperty(query, p, cityMatcher); s > 0 {
				ranked = append(ranked, scored{property: p, score: s})
			}
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].score > ranked[j].score
		})

		allProperties = make([]models.Property, 0, len(ranked))
		for _, r := range ranked {
			allProperties = append(allProperties, r.property)
		}
	}

	total := len(allProperties)
	start := page * limit
	end := start + limit
	if start >= total {
		allProperties = []models.Property{}
	} else if end > total {
		allProperties = allProperties[start:]
	} else {
		allProperties = allProperties[start:end]
	}

	propertyResponses := make([]dto.PropertyResponse, 0, len(allProperties))
	for i := range allProperties {
		propertyResponses = append(propertyResponses, convertToPropertyResponse(&allProperties[i]))
	}

	response.SuccessWithPagination(c, propertyResponses, page, limit, total)
}

// GetPropertyDetail returns one listing.
func (pc *PropertyController) GetPropertyDetail(c *gin.Context) {
	propertyID := c.Param("id")

	var property models.Property
	if err := pc.db.Where("id = ?", propertyID).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToPropertyResponse(&property))
}

// CreateProperty registers a listing for the authenticated host.
func (pc *PropertyController) CreateProperty(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidatePropertyRequest(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	basePrice, err := decimal.NewFromString(request.BasePrice)
	if err != nil || basePrice.IsNegative() {
		response.BadRequest(c, "Invalid base price")
		return
	}

	currency := request.Currency
	if currency == "" {
		currency = "USD"
	}

	property := models.Property{
		HostID:             currentUserID,
		Name:               request.Name,
		Description:        request.Description,
		Address:            request.Address,
		City:               request.City,
		Country:            request.Country,
		BasePrice:          basePrice,
		DiscountPercentage: request.DiscountPercentage,
		Currency:           currency,
		MaxGuests:          request.MaxGuests,
		Bedrooms:           request.Bedrooms,
		Bathrooms:          request.Bathrooms,
		Avatar:             request.Avatar,
		Status:             constants.PropertyStatusActive,
	}

	if err := pc.db.Create(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	if pc.rdb != nil {
		_ = services.DeleteFromRedis(config.Ctx, pc.rdb, propertiesCacheKey)
	}

	response.Success(c, convertToPropertyResponse(&property))
}
