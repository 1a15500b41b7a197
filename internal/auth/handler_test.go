package auth_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/internal/auth"
	authPostgres "github.com/frahmantamala/grievance-portal/internal/auth/postgres"
	userDatamodel "github.com/frahmantamala/grievance-portal/internal/core/datamodel/user"
	"github.com/frahmantamala/grievance-portal/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const handlerSecret = "handler-test-secret-with-32-plus-characters"

var _ = Describe("Auth Handler Integration", func() {
	var (
		db       *gorm.DB
		handler  *auth.Handler
		rbac     *auth.RoleAuthorization
		tokenGen *auth.JWTTokenGenerator
		slogger  *slog.Logger
		citizen  *userDatamodel.User
		admin    *userDatamodel.User
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		Expect(db.AutoMigrate(&userDatamodel.User{})).To(Succeed())

		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		citizen = &userDatamodel.User{Name: "Asha", Email: "asha@example.com", Phone: "555-0101", PasswordHash: string(hash), Role: internal.RoleCitizen}
		admin = &userDatamodel.User{Name: "Root", Email: "root@example.com", Phone: "555-0199", PasswordHash: string(hash), Role: internal.RoleAdmin}
		Expect(db.Create(citizen).Error).To(Succeed())
		Expect(db.Create(admin).Error).To(Succeed())

		tokenGen = auth.NewJWTTokenGenerator(handlerSecret, 24*time.Hour)
		service := auth.NewService(authPostgres.NewRepository(db), tokenGen)
		handler = &auth.Handler{BaseHandler: transport.NewBaseHandler(slogger), Service: service}
		rbac = auth.NewRoleAuthorization(slogger)
	})

	postJSON := func(h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
		payload, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h(w, req)
		return w
	}

	decodeError := func(w *httptest.ResponseRecorder) map[string]interface{} {
		var body map[string]map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		return body["error"]
	}

	Describe("POST /api/login", func() {
		It("should return a token and the citizen profile", func() {
			w := postJSON(handler.Login, map[string]string{"email": "asha@example.com", "password": "password123"})
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Message string `json:"message"`
				Token   string `json:"token"`
				User    struct {
					ID    int64  `json:"id"`
					Name  string `json:"name"`
					Email string `json:"email"`
					Phone string `json:"phone"`
				} `json:"user"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Message).To(Equal("Login successful"))
			Expect(resp.Token).NotTo(BeEmpty())
			Expect(resp.User.ID).To(Equal(citizen.ID))
			Expect(resp.User.Phone).To(Equal("555-0101"))
		})

		It("should return 401 for a wrong password", func() {
			w := postJSON(handler.Login, map[string]string{"email": "asha@example.com", "password": "nope"})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeError(w)["code"]).To(Equal(string(internal.ErrCodeInvalidCredentials)))
		})

		It("should return 400 when fields are missing", func() {
			w := postJSON(handler.Login, map[string]string{"email": "asha@example.com"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(w)["type"]).To(Equal(string(internal.ErrorTypeValidation)))
		})

		It("should return 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{"))
			w := httptest.NewRecorder()
			handler.Login(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(w)["code"]).To(Equal(string(internal.ErrCodeInvalidBody)))
		})
	})

	Describe("POST /api/admin/login", func() {
		It("should log an admin in with the role in the response", func() {
			w := postJSON(handler.AdminLogin, map[string]string{"email": "root@example.com", "password": "password123"})
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]interface{}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["message"]).To(Equal("Admin login successful"))
			Expect(resp["user"].(map[string]interface{})["role"]).To(Equal(internal.RoleAdmin))
		})

		It("should reject a citizen", func() {
			w := postJSON(handler.AdminLogin, map[string]string{"email": "asha@example.com", "password": "password123"})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeError(w)["message"]).To(Equal("Invalid admin credentials"))
		})
	})

	Describe("AuthMiddleware and RequireAdmin", func() {
		var protected http.Handler
		var seen *internal.User

		BeforeEach(func() {
			seen = nil
			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = internal.UserFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			}))
		})

		serve := func(h http.Handler, authorization string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if authorization != "" {
				req.Header.Set("Authorization", authorization)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			return w
		}

		It("should return 401 without a header", func() {
			w := serve(protected, "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeError(w)["code"]).To(Equal(string(internal.ErrCodeMissingToken)))
		})

		It("should return 401 for a header that is not a bearer token", func() {
			Expect(serve(protected, "Basic abc").Code).To(Equal(http.StatusUnauthorized))
			Expect(serve(protected, "Bearer").Code).To(Equal(http.StatusUnauthorized))
		})

		It("should return 403 for a tampered token", func() {
			w := serve(protected, "Bearer not.a.token")
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decodeError(w)["code"]).To(Equal(string(internal.ErrCodeInvalidToken)))
		})

		It("should return 403 for an expired token", func() {
			token, err := auth.NewJWTTokenGenerator(handlerSecret, -time.Minute).GenerateAccessToken(citizen.ID, citizen.Email, "")
			Expect(err).NotTo(HaveOccurred())

			w := serve(protected, "Bearer "+token)
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decodeError(w)["code"]).To(Equal(string(internal.ErrCodeTokenExpired)))
		})

		It("should place the principal in the context", func() {
			token, err := tokenGen.GenerateAccessToken(citizen.ID, citizen.Email, "")
			Expect(err).NotTo(HaveOccurred())

			w := serve(protected, "Bearer "+token)
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(seen).NotTo(BeNil())
			Expect(seen.ID).To(Equal(citizen.ID))
			Expect(seen.Role).To(Equal(internal.RoleCitizen))
		})

		It("should reject a citizen token on admin routes with 403", func() {
			token, err := tokenGen.GenerateAccessToken(citizen.ID, citizen.Email, "")
			Expect(err).NotTo(HaveOccurred())

			adminOnly := handler.AuthMiddleware(rbac.RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})))
			w := serve(adminOnly, "Bearer "+token)
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decodeError(w)["code"]).To(Equal(string(internal.ErrCodeAdminRequired)))
		})

		It("should let an admin token through admin routes", func() {
			token, err := tokenGen.GenerateAccessToken(admin.ID, admin.Email, internal.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())

			adminOnly := handler.AuthMiddleware(rbac.RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})))
			Expect(serve(adminOnly, "Bearer "+token).Code).To(Equal(http.StatusNoContent))
		})

		It("should reject a forged admin claim for a citizen account", func() {
			token, err := tokenGen.GenerateAccessToken(citizen.ID, citizen.Email, internal.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			Expect(serve(protected, "Bearer "+token).Code).To(Equal(http.StatusForbidden))
		})

		It("should reject a token for a user that no longer exists", func() {
			token, err := tokenGen.GenerateAccessToken(citizen.ID, citizen.Email, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(db.Delete(&userDatamodel.User{}, citizen.ID).Error).To(Succeed())

			Expect(serve(protected, "Bearer "+token).Code).To(Equal(http.StatusForbidden))
		})
	})
})
