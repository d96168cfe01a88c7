package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-Pesquisa/src/database"
	"Backend-Pesquisa/src/models"
	"Backend-Pesquisa/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// AuthenticateUser checks the credentials and returns the user plus a JWT
// access/refresh pair. The refresh token is stored in Redis keyed by user so
// logout can revoke it.
func AuthenticateUser(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	accessToken, err := utils.GenerateJWT(dbUser.ID.Hex(), dbUser.Email, dbUser.Role)
	if err != nil {
		return nil, err
	}

	refreshToken := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(dbUser.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return nil, err
	}

	dbUser.Password = ""
	return &models.LoginResponse{
		User:         &dbUser,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshAccessToken trades a valid refresh token for a new access token.
func RefreshAccessToken(ctx context.Context, userID, refreshToken string) (string, error) {
	ok, err := utils.ValidateRefreshToken(userID, refreshToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("invalid refresh token")
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", errors.New("invalid user id")
	}

	var dbUser models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&dbUser); err != nil {
		return "", errors.New("user not found")
	}

	return utils.GenerateJWT(dbUser.ID.Hex(), dbUser.Email, dbUser.Role)
}

// Logout revokes the refresh token and blacklists the current access token
// for its remaining lifetime.
func Logout(userID, accessToken string) error {
	if err := utils.DeleteRefreshToken(userID); err != nil {
		return err
	}
	return utils.BlacklistToken(accessToken, 24*time.Hour)
}
