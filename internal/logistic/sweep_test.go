package logistic_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jsperk/chaoslab/internal/dynamo"
	"github.com/jsperk/chaoslab/internal/logistic"
)

var _ = Describe("Sweep", func() {
	var cfg logistic.SweepConfig

	BeforeEach(func() {
		cfg = logistic.DefaultSweepConfig()
		cfg.Resolution = 50
		cfg.Settle = 500
		cfg.Sample = 50
	})

	It("rejects a non-positive carrying capacity", func() {
		cfg.K = 0
		_, err := logistic.Sweep(cfg)
		Expect(err).To(MatchError(dynamo.ErrCarryingCapacity))

		cfg.K = -10
		_, err = logistic.Sweep(cfg)
		Expect(err).To(MatchError(dynamo.ErrCarryingCapacity))
	})

	It("returns an empty set when the range is inverted", func() {
		cfg.MinR, cfg.MaxR = 3.0, 2.0
		points, err := logistic.Sweep(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(BeEmpty())
	})

	It("pins every point to the single rate of a degenerate range", func() {
		cfg.MinR, cfg.MaxR = 3.5, 3.5
		points, err := logistic.Sweep(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).NotTo(BeEmpty())
		for _, p := range points {
			Expect(p.R).To(Equal(3.5))
		}
	})

	It("never records more than Sample values per rate", func() {
		cfg.MinR, cfg.MaxR = 0.0, 4.0
		points, err := logistic.Sweep(cfg)
		Expect(err).NotTo(HaveOccurred())

		perRate := map[float64]int{}
		for _, p := range points {
			perRate[p.R]++
		}
		for r, n := range perRate {
			Expect(n).To(BeNumerically("<=", cfg.Sample), "rate %v", r)
		}
	})

	It("emits no duplicate points", func() {
		cfg.MinR, cfg.MaxR = 2.8, 4.0
		points, err := logistic.Sweep(cfg)
		Expect(err).NotTo(HaveOccurred())

		seen := map[logistic.Point]bool{}
		for _, p := range points {
			Expect(seen[p]).To(BeFalse(), "duplicate point %+v", p)
			seen[p] = true
		}
	})

	It("collapses a stable regime onto its fixed point", func() {
		// r=2: P* = K(1 - 1/r) = 500.
		cfg.MinR, cfg.MaxR = 2.0, 2.0
		cfg.Resolution = 1
		points, err := logistic.Sweep(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(1))
		Expect(points[0].P).To(BeNumerically("~", 500, 0.01))
	})

	It("finds both branches of a period-2 cycle", func() {
		cfg.MinR, cfg.MaxR = 3.2, 3.2
		cfg.Resolution = 1
		points, err := logistic.Sweep(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(2))
	})

	It("is deterministic", func() {
		cfg.MinR, cfg.MaxR = 3.4, 3.9
		a, err := logistic.Sweep(cfg)
		Expect(err).NotTo(HaveOccurred())
		b, err := logistic.Sweep(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})
})
