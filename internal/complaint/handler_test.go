package complaint_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/internal/complaint"
	complaintPostgres "github.com/frahmantamala/grievance-portal/internal/complaint/postgres"
	complaintDatamodel "github.com/frahmantamala/grievance-portal/internal/core/datamodel/complaint"
	userDatamodel "github.com/frahmantamala/grievance-portal/internal/core/datamodel/user"
	"github.com/frahmantamala/grievance-portal/internal/transport"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Complaint Handler Integration", func() {
	var (
		db      *gorm.DB
		router  chi.Router
		citizen *userDatamodel.User
		other   *userDatamodel.User
		actAs   *internal.User
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)
		Expect(db.AutoMigrate(&userDatamodel.User{}, &complaintDatamodel.Complaint{})).To(Succeed())

		citizen = &userDatamodel.User{Name: "Asha", Email: "asha@example.com", Phone: "555-0101", PasswordHash: "x", Role: internal.RoleCitizen}
		other = &userDatamodel.User{Name: "Ben", Email: "ben@example.com", Phone: "555-0102", PasswordHash: "x", Role: internal.RoleCitizen}
		Expect(db.Create(citizen).Error).To(Succeed())
		Expect(db.Create(other).Error).To(Succeed())

		service := complaint.NewService(
			complaintPostgres.NewComplaintRepository(db),
			complaintPostgres.NewStatsRepository(sqlx.NewDb(sqlDB, "sqlite3")),
			complaint.NewMetrics(prometheus.NewRegistry()),
			slogger,
		)
		handler := complaint.NewHandler(transport.NewBaseHandler(slogger), service)

		actAs = &internal.User{ID: citizen.ID, Email: citizen.Email, Role: internal.RoleCitizen}
		router = chi.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(internal.ContextWithUser(r.Context(), actAs)))
			})
		})
		router.Post("/api/complaints", handler.SubmitComplaint)
		router.Get("/api/complaints", handler.ListComplaints)
		router.Get("/api/complaints/{id}", handler.GetComplaint)
		router.Get("/api/admin/complaints", handler.ListAllComplaints)
		router.Get("/api/admin/stats", handler.GetStats)
		router.Put("/api/admin/complaints/{id}/status", handler.UpdateComplaintStatus)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	submit := func(body string) complaint.SubmitResponse {
		w := do(http.MethodPost, "/api/complaints", body)
		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp complaint.SubmitResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		return resp
	}

	It("should submit a complaint and return its id and priority", func() {
		resp := submit(`{"title":"Live wire","description":"Danger near school","category":"Roads","location":"5th Ave"}`)
		Expect(resp.Message).To(Equal("Complaint submitted successfully"))
		Expect(resp.ComplaintID).To(BeNumerically(">", 0))
		Expect(resp.Priority).To(Equal("High"))
	})

	It("should reject an empty title without persisting a row", func() {
		w := do(http.MethodPost, "/api/complaints", `{"title":"","description":"d","category":"Roads"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var count int64
		Expect(db.Model(&complaintDatamodel.Complaint{}).Count(&count).Error).To(Succeed())
		Expect(count).To(BeZero())
	})

	It("should list the caller's complaints and return an empty array otherwise", func() {
		w := do(http.MethodGet, "/api/complaints", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"complaints":[]`))

		submit(`{"title":"a","description":"broken light","category":"Electricity"}`)
		w = do(http.MethodGet, "/api/complaints", "")
		var resp complaint.ListResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Complaints).To(HaveLen(1))
		Expect(resp.Complaints[0].Status).To(Equal(complaint.StatusPending))
		Expect(resp.Complaints[0].UpdatedAt).To(BeNil())
	})

	It("should return 404 when another user asks for the complaint", func() {
		resp := submit(`{"title":"a","description":"d","category":"Other"}`)
		path := "/api/complaints/" + strconv.FormatInt(resp.ComplaintID, 10)

		Expect(do(http.MethodGet, path, "").Code).To(Equal(http.StatusOK))

		actAs = &internal.User{ID: other.ID, Email: other.Email, Role: internal.RoleCitizen}
		w := do(http.MethodGet, path, "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should return 400 for a non-numeric id", func() {
		w := do(http.MethodGet, "/api/complaints/abc", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should update status and reject unknown statuses", func() {
		resp := submit(`{"title":"a","description":"d","category":"Other"}`)
		path := "/api/admin/complaints/" + strconv.FormatInt(resp.ComplaintID, 10) + "/status"

		w := do(http.MethodPut, path, `{"status":"Done"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		var stored complaintDatamodel.Complaint
		Expect(db.First(&stored, resp.ComplaintID).Error).To(Succeed())
		Expect(stored.Status).To(Equal(complaint.StatusPending))

		w = do(http.MethodPut, path, `{"status":"In Progress"}`)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Status updated successfully"))
		Expect(db.First(&stored, resp.ComplaintID).Error).To(Succeed())
		Expect(stored.Status).To(Equal(complaint.StatusInProgress))
		Expect(stored.UpdatedAt).NotTo(BeNil())
	})

	It("should return 404 when updating a complaint that does not exist", func() {
		w := do(http.MethodPut, "/api/admin/complaints/4242/status", `{"status":"Closed"}`)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should list all complaints with submitter fields", func() {
		submit(`{"title":"mine","description":"d","category":"Other"}`)
		actAs = &internal.User{ID: other.ID, Email: other.Email, Role: internal.RoleCitizen}
		submit(`{"title":"theirs","description":"d","category":"Other"}`)

		w := do(http.MethodGet, "/api/admin/complaints", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp struct {
			Complaints []map[string]interface{} `json:"complaints"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Complaints).To(HaveLen(2))
		emails := []interface{}{resp.Complaints[0]["user_email"], resp.Complaints[1]["user_email"]}
		Expect(emails).To(ConsistOf("asha@example.com", "ben@example.com"))
		Expect(resp.Complaints[0]).To(HaveKey("user_name"))
		Expect(resp.Complaints[0]).To(HaveKey("user_phone"))
	})

	It("should report stats with camelCase keys", func() {
		submit(`{"title":"a","description":"urgent","category":"Other"}`)

		w := do(http.MethodGet, "/api/admin/stats", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp struct {
			Stats map[string]float64 `json:"stats"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Stats["totalUsers"]).To(Equal(2.0))
		Expect(resp.Stats["totalComplaints"]).To(Equal(1.0))
		Expect(resp.Stats["pending"]).To(Equal(1.0))
		Expect(resp.Stats["highPriority"]).To(Equal(1.0))
	})
})
