package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/config"
)

var _ = Describe("Config", func() {
	var configDir string

	BeforeEach(func() {
		configDir = GinkgoT().TempDir()
	})

	writeConfig := func(contents string) string {
		file := filepath.Join(configDir, "config.yaml")
		Expect(os.WriteFile(file, []byte(contents), 0o600)).To(Succeed(), "writing the config file should not fail")
		return file
	}

	It("reads the configuration", func() {
		file := writeConfig(`
data_file: /var/lib/checkwriter/checks.yaml
log_level: debug
verification_base_url: https://checks.example.com/verify
ynab:
  budget_name: Business
  accounts:
    Chase Business Checking: Checking
`)

		cfg, err := config.Read(file)
		Expect(err).ToNot(HaveOccurred(), "reading the config should not fail")
		Expect(cfg.GetDataFile()).To(Equal("/var/lib/checkwriter/checks.yaml"), "the data file should be read")
		Expect(cfg.GetLogLevel()).To(Equal("debug"), "the log level should be read")
		Expect(cfg.VerificationBaseURL).To(Equal("https://checks.example.com/verify"), "the verification URL should be read")
		Expect(cfg.YNAB.BudgetName).To(Equal("Business"), "the YNAB budget should be read")
		Expect(cfg.YNAB.Accounts).To(HaveKeyWithValue("Chase Business Checking", "Checking"), "the YNAB account mapping should be read")
		Expect(cfg.Capabilities()).To(Equal(check.ReadWrite), "non-demo sessions should be able to write")
	})

	It("uses defaults when the file is missing", func() {
		cfg, err := config.Read(filepath.Join(configDir, "missing.yaml"))
		Expect(err).ToNot(HaveOccurred(), "a missing config should not fail")
		Expect(cfg.GetDataFile()).To(Equal("checks.yaml"), "the data file should default")
		Expect(cfg.GetLogLevel()).To(Equal("info"), "the log level should default")
	})

	It("makes demo sessions read-only", func() {
		cfg, err := config.Read(writeConfig("demo: true\n"))
		Expect(err).ToNot(HaveOccurred(), "reading the config should not fail")
		Expect(cfg.Capabilities().CanWrite).To(BeFalse(), "demo sessions should not be able to write")
	})

	It("fails on malformed YAML", func() {
		_, err := config.Read(writeConfig("demo: [\n"))
		Expect(err).To(HaveOccurred(), "malformed YAML should fail")
	})
})
