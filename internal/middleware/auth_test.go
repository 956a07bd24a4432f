package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func authRouter(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/protected", handler, func(c *gin.Context) {
		userID, _ := c.Get("userId")
		c.JSON(http.StatusOK, gin.H{"userId": userID.(primitive.ObjectID).Hex()})
	})
	return r
}

func request(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUserAuthAcceptsValidToken(t *testing.T) {
	userID := primitive.NewObjectID()
	token := signToken(t, jwt.MapClaims{"userId": userID.Hex()}, testSecret)

	rec := request(authRouter(UserAuth(testSecret, zap.NewNop())), "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUserAuthRejectsMissingHeader(t *testing.T) {
	rec := request(authRouter(UserAuth(testSecret, zap.NewNop())), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserAuthRejectsWrongSecret(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"userId": primitive.NewObjectID().Hex()}, "other-secret")

	rec := request(authRouter(UserAuth(testSecret, zap.NewNop())), "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserAuthRejectsMalformedScheme(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"userId": primitive.NewObjectID().Hex()}, testSecret)

	rec := request(authRouter(UserAuth(testSecret, zap.NewNop())), "Token "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserAuthRejectsBadUserIDClaim(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"userId": "not-an-object-id"}, testSecret)

	rec := request(authRouter(UserAuth(testSecret, zap.NewNop())), "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthRequiresAdminRole(t *testing.T) {
	userToken := signToken(t, jwt.MapClaims{"userId": primitive.NewObjectID().Hex(), "role": "user"}, testSecret)
	adminToken := signToken(t, jwt.MapClaims{"userId": primitive.NewObjectID().Hex(), "role": "admin"}, testSecret)

	router := authRouter(AdminAuth(testSecret, zap.NewNop()))

	if rec := request(router, "Bearer "+userToken); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}
	if rec := request(router, "Bearer "+adminToken); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", rec.Code, rec.Body.String())
	}
}
