// Package category implements the keyword-based category suggester that
// callers of the parse engines use to classify accepted parses. The parsing
// core itself never consults it.
package category

import (
	"context"
	"strings"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/service"
)

// DefaultCategory is assigned when no rule matches.
const DefaultCategory = "Miscellaneous"

// rule maps keyword fragments to a category with a confidence.
type rule struct {
	category   string
	confidence float64
	keywords   []string
}

// defaultRules covers the common Indian merchant landscape. Rules are checked
// in order; the first keyword hit wins.
var defaultRules = []rule{
	{"Food & Dining", 0.90, []string{
		"swiggy", "zomato", "dominos", "mcdonald", "kfc", "pizza", "burger",
		"cafe", "starbucks", "barista", "hotel", "restaurant", "biryani",
		"eatfit", "faasos", "dunkin",
	}},
	{"Groceries", 0.90, []string{
		"bigbasket", "blinkit", "zepto", "grofers", "dmart", "d-mart",
		"reliance fresh", "more supermarket", "kirana", "spencer", "grocery",
	}},
	{"Transport", 0.85, []string{
		"uber", "ola", "rapido", "irctc", "redbus", "metro", "bmtc", "ksrtc",
		"fastag", "petrol", "fuel", "hpcl", "bpcl", "indianoil",
	}},
	{"Shopping", 0.85, []string{
		"amazon", "flipkart", "myntra", "ajio", "nykaa", "meesho", "snapdeal",
		"decathlon", "croma", "reliance digital", "sangeetha",
	}},
	{"Bills & Utilities", 0.90, []string{
		"airtel", "jio", "vodafone", "vi ", "bsnl", "bescom", "tneb",
		"electricity", "broadband", "postpaid", "prepaid", "recharge",
		"dth", "tata sky", "gas",
	}},
	{"Entertainment", 0.85, []string{
		"netflix", "hotstar", "prime video", "spotify", "bookmyshow",
		"sonyliv", "zee5", "pvr", "inox", "gaana",
	}},
	{"Health", 0.85, []string{
		"pharmacy", "apollo", "medplus", "netmeds", "pharmeasy", "1mg",
		"hospital", "clinic", "diagnostic", "practo",
	}},
	{"Cash Withdrawal", 0.95, []string{"atm", "withdrawn", "cash wdl"}},
	{"Salary", 0.90, []string{"salary", "payroll", "wages"}},
	{"Investments", 0.85, []string{
		"zerodha", "groww", "upstox", "mutual fund", "sip", "nps", "ppf",
	}},
	{"Rent", 0.85, []string{"rent", "nobroker", "nestaway"}},
	{"Education", 0.85, []string{
		"school", "college", "tuition", "udemy", "coursera", "byjus",
	}},
}

// Suggester is the default service.CategorySuggester implementation.
type Suggester struct {
	rules []rule
}

// Ensure Suggester implements the collaborator contract.
var _ service.CategorySuggester = (*Suggester)(nil)

// NewSuggester creates a suggester over the built-in rule table.
func NewSuggester() *Suggester {
	return &Suggester{rules: defaultRules}
}

// Suggest returns the best-fit category for a merchant/description pair.
// It never fails; an unmatched transaction gets DefaultCategory with a low
// confidence so callers can tell it apart from a keyword hit.
func (s *Suggester) Suggest(_ context.Context, merchant, description string, _ model.Channel) (string, float64, error) {
	text := strings.ToLower(merchant + " " + description)
	for _, r := range s.rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.category, r.confidence, nil
			}
		}
	}
	return DefaultCategory, 0.30, nil
}
