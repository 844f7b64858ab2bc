package controllers

import (
	"net/http"
	"regexp"
	"time"

	"github.com/TAMUSHPE/MobileApp-sub002/database"
	"github.com/TAMUSHPE/MobileApp-sub002/models"
	"github.com/TAMUSHPE/MobileApp-sub002/utils"
	"github.com/gin-gonic/gin"
)

var validEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@(tamu\.edu|email\.tamu\.edu)$`)

// Register handles user registration
func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		GradYear int    `json:"grad_year"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate email domain
	if !validEmail.MatchString(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email must be from @tamu.edu or @email.tamu.edu"})
		return
	}

	// Check if a user with the same email already exists
	var existingUser models.User
	if err := database.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
		return
	}

	// Hash the password
	var user models.User
	if err := user.HashPassword(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	// Generate and send OTP (only in production)
	if gin.Mode() == gin.ReleaseMode {
		otp := utils.GenerateOTP()
		otpExpiresAt := time.Now().Add(10 * time.Minute) // OTP expires in 10 minutes

		// Park the registration until the OTP comes back
		pendingUser := utils.PendingUser{
			Name:         input.Name,
			Email:        input.Email,
			GradYear:     input.GradYear,
			PasswordHash: user.Password,
			OTP:          otp,
			OTPExpiresAt: otpExpiresAt,
			CreatedAt:    time.Now(),
		}
		utils.AddPendingUser(input.Email, pendingUser)

		// Send OTP via email (mock implementation for now)
		// In production, integrate with an email service like SendGrid or AWS SES
		go func(email, otp string) {
			println("Sending OTP to", email, ":", otp)
		}(input.Email, otp)

		c.JSON(http.StatusOK, gin.H{"message": "OTP sent for verification"})
		return
	}

	// In development mode, directly create the user
	user.Name = input.Name
	user.Email = input.Email
	user.GradYear = input.GradYear
	user.RegistrationDate = time.Now()
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// VerifyOTP completes a pending registration
func VerifyOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pendingUser, exists := utils.GetPendingUser(input.Email)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "No pending registration found for this email"})
		return
	}

	// Check if the OTP matches and is not expired
	if pendingUser.OTP != input.OTP || time.Now().After(pendingUser.OTPExpiresAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		return
	}

	user := models.User{
		Name:             pendingUser.Name,
		Email:            pendingUser.Email,
		GradYear:         pendingUser.GradYear,
		Password:         pendingUser.PasswordHash,
		RegistrationDate: time.Now(),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	utils.DeletePendingUser(input.Email)

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified successfully. User registered."})
}

// Login handles password-based login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !user.CheckPassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// Generate access token
	accessToken, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}

	// Generate refresh token
	refreshToken, refreshTokenExp, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}

	// Save the refresh token to the database
	user.RefreshToken = refreshToken
	user.RefreshTokenExp = refreshTokenExp
	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// RefreshToken handles access token refresh
func RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(input.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	var user models.User
	if err := database.DB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	// Check if the refresh token matches and is not expired
	if user.RefreshToken != input.RefreshToken || time.Now().After(user.RefreshTokenExp) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	accessToken, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
	})
}

// ForgotPassword starts an OTP-gated password reset
func ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		// Do not reveal whether the email is registered
		c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, an OTP has been sent"})
		return
	}

	otp := utils.GenerateOTP()
	utils.AddPendingReset(input.Email, utils.PendingReset{
		Email:        input.Email,
		OTP:          otp,
		OTPExpiresAt: time.Now().Add(10 * time.Minute),
		CreatedAt:    time.Now(),
	})

	go func(email, otp string) {
		println("Sending password reset OTP to", email, ":", otp)
	}(input.Email, otp)

	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, an OTP has been sent"})
}

// ResetPassword completes an OTP-gated password reset
func ResetPassword(c *gin.Context) {
	var input struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pendingReset, exists := utils.GetPendingReset(input.Email)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "No pending password reset found for this email"})
		return
	}

	if pendingReset.OTP != input.OTP || time.Now().After(pendingReset.OTPExpiresAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := user.HashPassword(input.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	utils.DeletePendingReset(input.Email)

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
