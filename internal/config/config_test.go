package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/marnixbouhuis/httplog"
	"github.com/marnixbouhuis/httplog/internal/config"
)

var _ = Describe("Config", func() {
	var (
		tempDir string
		noFile  string
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())

		noFile = filepath.Join(tempDir, "missing.env")
		os.Unsetenv(config.EnvPort)
		os.Unsetenv(config.EnvLogLevel)
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
		os.Unsetenv(config.EnvPort)
		os.Unsetenv(config.EnvLogLevel)
	})

	Describe("ParsePort", func() {
		It("should parse a valid port", func() {
			Expect(config.ParsePort("8080")).To(Equal(8080))
		})

		It("should require at least two digits", func() {
			Expect(config.ParsePort("80")).To(Equal(80))
			Expect(config.ParsePort("8")).To(Equal(config.DefaultPort))
			Expect(config.ParsePort("0")).To(Equal(config.DefaultPort))
		})

		It("should fall back for empty input", func() {
			Expect(config.ParsePort("")).To(Equal(config.DefaultPort))
		})

		It("should fall back for leading zeroes and garbage", func() {
			Expect(config.ParsePort("0808")).To(Equal(config.DefaultPort))
			Expect(config.ParsePort("80a")).To(Equal(config.DefaultPort))
			Expect(config.ParsePort("-8080")).To(Equal(config.DefaultPort))
			Expect(config.ParsePort(" 8080")).To(Equal(config.DefaultPort))
		})

		It("should fall back when the port overflows", func() {
			Expect(config.ParsePort("99999999999999999999999")).To(Equal(config.DefaultPort))
		})
	})

	Describe("Load", func() {
		Context("without environment", func() {
			It("should use defaults", func() {
				cfg, err := config.Load(noFile)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Port).To(Equal(1337))
				Expect(cfg.LogLevel).To(Equal(httplog.InfoLevel))
				Expect(cfg.Ignored).To(BeEmpty())
				Expect(cfg.Addr()).To(Equal(":1337"))
			})
		})

		Context("with environment variables", func() {
			It("should read the port and log level", func() {
				os.Setenv(config.EnvPort, "8080")
				os.Setenv(config.EnvLogLevel, "debug")

				cfg, err := config.Load(noFile)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Port).To(Equal(8080))
				Expect(cfg.LogLevel).To(Equal(httplog.DebugLevel))
			})

			It("should accept upper case level names", func() {
				os.Setenv(config.EnvLogLevel, "VERBOSE")

				cfg, err := config.Load(noFile)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.LogLevel).To(Equal(httplog.VerboseLevel))
			})

			It("should ignore surrounding whitespace in the level name", func() {
				os.Setenv(config.EnvLogLevel, " debug ")

				cfg, err := config.Load(noFile)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.LogLevel).To(Equal(httplog.DebugLevel))
				Expect(cfg.Ignored).To(BeEmpty())
			})

			It("should fall back and report invalid values", func() {
				os.Setenv(config.EnvPort, "8")
				os.Setenv(config.EnvLogLevel, "silly")

				cfg, err := config.Load(noFile)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Port).To(Equal(config.DefaultPort))
				Expect(cfg.LogLevel).To(Equal(httplog.InfoLevel))
				Expect(cfg.Ignored).To(HaveKey(config.EnvPort))
				Expect(cfg.Ignored).To(HaveKey(config.EnvLogLevel))
			})
		})

		Context("with an env file", func() {
			var envFile string

			BeforeEach(func() {
				envFile = filepath.Join(tempDir, ".env")
				err := os.WriteFile(envFile, []byte("PORT=3000\nLOG_LEVEL=warn\n"), 0o644)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should load values from the file", func() {
				cfg, err := config.Load(envFile)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Port).To(Equal(3000))
				Expect(cfg.LogLevel).To(Equal(httplog.WarnLevel))
			})

			It("should not override variables that are already set", func() {
				os.Setenv(config.EnvPort, "4000")

				cfg, err := config.Load(envFile)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Port).To(Equal(4000))
				Expect(cfg.LogLevel).To(Equal(httplog.WarnLevel))
			})
		})

		Context("with an unreadable env file", func() {
			It("should return an error", func() {
				// A directory can be opened but not parsed as an env file.
				_, err := config.Load(tempDir)
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
