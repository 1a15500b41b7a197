package internal_test

import (
	"time"

	"github.com/frahmantamala/grievance-portal/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var cfg *internal.Config

	BeforeEach(func() {
		cfg = &internal.Config{
			Database: internal.DatabaseConfig{Source: "postgres://localhost/grievance"},
			Security: internal.SecurityConfig{JWTSecret: "0123456789abcdef0123456789abcdef"},
		}
		cfg.ApplyDefaults()
	})

	Describe("ApplyDefaults", func() {
		It("fills server, token and logging defaults", func() {
			Expect(cfg.Environment).To(Equal("development"))
			Expect(cfg.Server.Port).To(Equal(internal.DefaultPort))
			Expect(cfg.Security.AccessTokenDuration).To(Equal(24 * time.Hour))
			Expect(cfg.Security.BCryptCost).To(Equal(internal.DefaultBCryptCost))
			Expect(cfg.Observability.Metrics.Path).To(Equal("/metrics"))
			Expect(cfg.Observability.Logging.Level).To(Equal("info"))
		})

		It("keeps explicit values", func() {
			c := &internal.Config{Server: internal.ServerConfig{Port: 8080}}
			c.ApplyDefaults()
			Expect(c.Server.Port).To(Equal(8080))
		})
	})

	Describe("Validate", func() {
		It("accepts a defaulted config", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("rejects a short jwt secret", func() {
			cfg.Security.JWTSecret = "short"
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("JWTSecret")))
		})

		It("rejects a missing database source", func() {
			cfg.Database.Source = ""
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("Source")))
		})

		It("rejects more idle than open connections", func() {
			cfg.Database.MaxIdleConns = cfg.Database.MaxOpenConns + 1
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("max_idle_conns")))
		})

		It("rejects an unknown log format", func() {
			cfg.Observability.Logging.Format = "xml"
			Expect(cfg.Validate()).To(HaveOccurred())
		})
	})

	Describe("Origins", func() {
		It("defaults to any origin", func() {
			Expect(cfg.Server.Origins()).To(Equal([]string{"*"}))
		})

		It("splits and trims the list", func() {
			cfg.Server.AllowedOrigins = "http://a.test, http://b.test,,"
			Expect(cfg.Server.Origins()).To(Equal([]string{"http://a.test", "http://b.test"}))
		})
	})
})
