package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"worksight.com/worksight/core"
	"worksight.com/worksight/models"
	"worksight.com/worksight/security"
	"worksight.com/worksight/web/common"
)

const tokenLifetimeSeconds = 24 * 3600

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler authenticates a dashboard user and issues an identity token.
func LoginHandler(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
			return
		}

		hostname := common.GetHostname(c.Request.Host)
		ctx := c.Request.Context()

		var user models.User
		if err := dm.Exec(ctx, hostname, func(db *gorm.DB) error {
			return db.Where("email = ?", body.Email).First(&user).Error
		}); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, common.NewErrorResponse("invalid credentials"))
				return
			}
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, common.NewErrorResponse("invalid credentials"))
			return
		}

		secret := os.Getenv("WORKSIGHT_SIGNING_SECRET")
		token, err := security.CreateIdentityToken(&security.WorkSightIdentity{
			Id:             int(user.ID),
			OrganizationId: int(user.OrganizationID),
			Email:          user.Email,
			Role:           string(user.Role),
		}, secret, tokenLifetimeSeconds)
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.SetCookie("worksight.ApplicationCookie", token, tokenLifetimeSeconds, "/", "", false, true)
		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
			"token": token,
			"user": gin.H{
				"id":       user.ID,
				"email":    user.Email,
				"fullName": user.FullName,
				"role":     user.Role,
			},
		}))
	}
}
