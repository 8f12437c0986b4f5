package nurses_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/roster-framework/rosty/cmd/nurses"
)

func TestNurses(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Nurses Command Suite")
}

func run(args ...string) (string, error) {
	cmd := nurses.NewNursesCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("Nurses Command", func() {
	It("should enumerate a small instance and report statistics", func() {
		out, err := run("--nurses", "2", "--shifts", "2", "--days", "3")
		Expect(err).ToNot(HaveOccurred())
		Expect(strings.Count(out, "Solution ")).To(Equal(6))
		Expect(out).To(ContainSubstring("Statistics"))
		Expect(out).To(ContainSubstring("status          : ALL_SOLUTIONS_FOUND"))
		Expect(out).To(ContainSubstring("solutions found : 6"))
	})

	It("should suppress per-solution lines with --quiet", func() {
		out, err := run("--nurses", "2", "--shifts", "2", "--days", "3", "--quiet")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).ToNot(ContainSubstring("Solution 1"))
		Expect(out).To(ContainSubstring("solutions found : 6"))
	})

	It("should report infeasible instances without failing", func() {
		out, err := run("--nurses", "3", "--shifts", "4", "--days", "7")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("status          : INFEASIBLE"))
		Expect(out).To(ContainSubstring("solutions found : 0"))
	})

	It("should support the circuit engine", func() {
		out, err := run("--nurses", "2", "--shifts", "2", "--days", "3", "--engine", "gini", "--quiet")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("solutions found : 6"))
	})

	It("should reject unknown engines", func() {
		_, err := run("--engine", "bogus")
		Expect(err).To(HaveOccurred())
	})

	It("should load sizing from a config file", func() {
		path := writeConfig(`{"nurses": 2, "shifts": 2, "days": 3}`)
		out, err := run("--config", path)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("solutions found : 6"))
	})

	It("should let command-line flags override the config file", func() {
		path := writeConfig(`{"nurses": 3, "shifts": 2, "days": 3}`)
		out, err := run("--config", path, "--nurses", "2")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("solutions found : 6"))
	})

	It("should reject a config file with unknown keys", func() {
		path := writeConfig(`{"nursse": 2}`)
		_, err := run("--config", path)
		Expect(err).To(HaveOccurred())
	})

	It("should reject a missing config file", func() {
		_, err := run("--config", filepath.Join(GinkgoT().TempDir(), "absent.json"))
		Expect(err).To(HaveOccurred())
	})
})

func writeConfig(content string) string {
	path := filepath.Join(GinkgoT().TempDir(), "roster.json")
	Expect(os.WriteFile(path, []byte(content), 0600)).To(Succeed())
	return path
}
