package memberships

import (
	"context"
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetAllRules lists the membership rules of the requesting organization
// @Summary List membership rules
// @Description List the automatic-assignment rules of the caller's organization
// @Tags Membership Rules
// @Accept json
// @Produce json
// @Success 200 {array} models.MembershipRule
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /membership-rules [get]
// @Security Bearer
func GetAllRules(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var rules []models.MembershipRule
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("group_id IN (?)", orgGroupIDs(org)).
			Preload("Group").
			Find(&rules).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingRules)
		return
	}

	c.JSON(http.StatusOK, rules)
}

// CreateRule creates a membership rule
// @Summary Create a membership rule
// @Description Map an email domain to a group of the caller's organization. The domain is validated before being persisted.
// @Tags Membership Rules
// @Accept json
// @Produce json
// @Param rule body CreateRuleRequest true "Rule to create"
// @Success 201 {object} models.MembershipRule
// @Failure 400 {object} response.ErrorResponse "Invalid request or invalid domain"
// @Failure 404 {object} response.ErrorResponse "Group not found"
// @Router /membership-rules [post]
// @Security Bearer
func CreateRule(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateDomain(req.Domain); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var group models.CourseAccessGroup
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND organization_id = ?", req.GroupID, org.ID).
			First(&group).Error
	})
	if err != nil {
		response.NotFound(c, ErrGroupNotFound)
		return
	}

	rule := models.MembershipRule{
		Name:    req.Name,
		Domain:  req.Domain,
		GroupID: req.GroupID,
	}
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Create(&rule).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateRule)
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// UpdateRule updates a membership rule's name and domain
// @Summary Update a membership rule
// @Description Update the name or domain of a rule of the caller's organization
// @Tags Membership Rules
// @Accept json
// @Produce json
// @Param rule_id path string true "Rule ID"
// @Param rule body UpdateRuleRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request or invalid domain"
// @Failure 404 {object} response.ErrorResponse "Rule not found"
// @Router /membership-rules/{rule_id} [put]
// @Security Bearer
func UpdateRule(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var rule models.MembershipRule
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND group_id IN (?)", c.Param("rule_id"), orgGroupIDs(org)).
			First(&rule).Error
	})
	if err != nil {
		response.NotFound(c, ErrRuleNotFound)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Domain != "" {
		if err := utils.ValidateDomain(req.Domain); err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		updates["domain"] = req.Domain
	}

	if len(updates) > 0 {
		err = withTimeout(func(ctx context.Context) error {
			return database.DB.WithContext(ctx).Model(&rule).Updates(updates).Error
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedUpdateRule)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// DeleteRule deletes a membership rule
// @Summary Delete a membership rule
// @Description Delete a rule of the caller's organization. Existing memberships stay untouched.
// @Tags Membership Rules
// @Accept json
// @Produce json
// @Param rule_id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "Rule not found"
// @Router /membership-rules/{rule_id} [delete]
// @Security Bearer
func DeleteRule(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var rule models.MembershipRule
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND group_id IN (?)", c.Param("rule_id"), orgGroupIDs(org)).
			First(&rule).Error
	})
	if err != nil {
		response.NotFound(c, ErrRuleNotFound)
		return
	}

	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Delete(&rule).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteRule)
		return
	}

	c.Status(http.StatusNoContent)
}
