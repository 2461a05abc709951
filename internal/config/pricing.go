package config

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// PricingRules holds the commercial knobs of the pricing engine. Values are
// stored as strings in config files and parsed to decimals on snapshot.
type PricingRules struct {
	GSTRate            string `mapstructure:"gstRate"`
	InsuranceFee       string `mapstructure:"insuranceFee"`
	PartPaymentPercent string `mapstructure:"partPaymentPercent"`
}

func DefaultPricingRules() PricingRules {
	return PricingRules{
		GSTRate:            "0.18",
		InsuranceFee:       "600",
		PartPaymentPercent: "10",
	}
}

// PricingSnapshot is an immutable, parsed view handed to the engine per call.
type PricingSnapshot struct {
	GSTRate            decimal.Decimal
	InsuranceFee       decimal.Decimal
	PartPaymentPercent decimal.Decimal
}

// PricingRulesHolder serves the current rules and hot-reloads them when the
// config file changes on disk.
type PricingRulesHolder struct {
	current atomic.Value // holds PricingSnapshot
}

func NewPricingRulesHolder() (*PricingRulesHolder, error) {
	v := viper.New()

	v.SetConfigName("pricing")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/tripveda/config")
	v.AddConfigPath("/etc/tripveda")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TRIPVEDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPricingRules()
	v.SetDefault("pricing.gstRate", defaults.GSTRate)
	v.SetDefault("pricing.insuranceFee", defaults.InsuranceFee)
	v.SetDefault("pricing.partPaymentPercent", defaults.PartPaymentPercent)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	holder := &PricingRulesHolder{}
	if err := holder.reload(v); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		if err := holder.reload(v); err != nil {
			log.Printf("pricing config reload failed: %v", err)
		}
	})
	v.WatchConfig()

	return holder, nil
}

func (h *PricingRulesHolder) reload(v *viper.Viper) error {
	var rules PricingRules
	if err := v.UnmarshalKey("pricing", &rules); err != nil {
		return err
	}

	snapshot, err := parseRules(rules)
	if err != nil {
		return err
	}

	h.current.Store(snapshot)
	return nil
}

// Snapshot returns the rules in effect right now.
func (h *PricingRulesHolder) Snapshot() PricingSnapshot {
	value := h.current.Load()
	if value == nil {
		snapshot, _ := parseRules(DefaultPricingRules())
		return snapshot
	}
	return value.(PricingSnapshot)
}

func parseRules(rules PricingRules) (PricingSnapshot, error) {
	defaults := DefaultPricingRules()

	gst, err := parseDecimal(rules.GSTRate, defaults.GSTRate)
	if err != nil {
		return PricingSnapshot{}, err
	}
	insurance, err := parseDecimal(rules.InsuranceFee, defaults.InsuranceFee)
	if err != nil {
		return PricingSnapshot{}, err
	}
	partPercent, err := parseDecimal(rules.PartPaymentPercent, defaults.PartPaymentPercent)
	if err != nil {
		return PricingSnapshot{}, err
	}

	return PricingSnapshot{
		GSTRate:            gst,
		InsuranceFee:       insurance,
		PartPaymentPercent: partPercent,
	}, nil
}

func parseDecimal(raw, fallback string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		value = fallback
	}
	return decimal.NewFromString(value)
}
