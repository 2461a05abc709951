package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tripveda/tripveda/internal/clock"
	"github.com/tripveda/tripveda/internal/config"
	coupondomain "github.com/tripveda/tripveda/internal/coupon/domain"
	"github.com/tripveda/tripveda/internal/observability/metrics"
	pricingdomain "github.com/tripveda/tripveda/internal/pricing/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type serviceParam struct {
	fx.In

	Logger   *zap.Logger
	Catalog  pricingdomain.Catalog
	Resolver coupondomain.Resolver
	Clock    clock.Clock
	Rules    *config.PricingRulesHolder
	Metrics  *metrics.Metrics `optional:"true"`
}

type service struct {
	log      *zap.Logger
	catalog  pricingdomain.Catalog
	resolver coupondomain.Resolver
	clock    clock.Clock
	rules    *config.PricingRulesHolder
	metrics  *metrics.Metrics
}

func NewService(p serviceParam) pricingdomain.Service {
	return &service{
		log:      p.Logger.Named("pricing.service"),
		catalog:  p.Catalog,
		resolver: p.Resolver,
		clock:    p.Clock,
		rules:    p.Rules,
		metrics:  p.Metrics,
	}
}

// Calculate prices a whole booking request. Intermediate math keeps
// full decimal precision; rounding to 2 decimal places happens only
// when amounts are written into the breakdown.
func (s *service) Calculate(ctx context.Context, req pricingdomain.Request) (*pricingdomain.Breakdown, error) {
	if !req.BookingType.Valid() {
		return nil, pricingdomain.ErrUnknownBookingType
	}
	if len(req.Items) == 0 {
		return nil, pricingdomain.ErrNoItems
	}

	snapshot := s.rules.Snapshot()
	nights := pricingdomain.Nights(req.CheckIn, req.CheckOut)

	baseTotal := decimal.Zero
	taxes := decimal.Zero
	details := make([]pricingdomain.ItemDetail, 0, len(req.Items))

	for _, item := range req.Items {
		var (
			detail pricingdomain.ItemDetail
			err    error
		)
		switch req.BookingType {
		case pricingdomain.BookingStay:
			detail, err = s.priceStay(ctx, item, nights)
		case pricingdomain.BookingPackage:
			detail, err = s.pricePackage(ctx, item, snapshot)
		case pricingdomain.BookingActivity:
			detail, err = s.priceActivity(ctx, item, snapshot)
		case pricingdomain.BookingCab:
			detail, err = s.priceCab(ctx, item, nights, snapshot)
		case pricingdomain.BookingHouseBoat:
			detail, err = s.priceHouseBoat(ctx, item, nights, snapshot)
		}
		if err != nil {
			return nil, err
		}

		baseTotal = baseTotal.Add(detail.BaseAmount)
		taxes = taxes.Add(detail.TaxAmount)

		detail.BaseAmount = detail.BaseAmount.Round(2)
		detail.TaxAmount = detail.TaxAmount.Round(2)
		detail.Total = detail.Total.Round(2)
		details = append(details, detail)
	}

	grossTotal := baseTotal.Add(taxes)

	couponDiscount := decimal.Zero
	var couponApplied *pricingdomain.CouponApplied
	if req.CouponCode != "" {
		coupon, err := s.resolver.Resolve(ctx, req.CouponCode, s.clock.Now())
		if err != nil {
			return nil, err
		}
		if coupon != nil {
			couponDiscount = coupon.DiscountAmount
			if couponDiscount.GreaterThan(grossTotal) {
				couponDiscount = grossTotal
			}
			couponApplied = &pricingdomain.CouponApplied{
				Code:           coupon.Code,
				DiscountAmount: couponDiscount.Round(2),
			}
			if s.metrics != nil {
				s.metrics.RecordCouponApplied(ctx, string(req.BookingType))
			}
		} else {
			// A bad code never fails the quote.
			s.log.Debug("coupon skipped", zap.String("code", req.CouponCode))
			if s.metrics != nil {
				s.metrics.RecordCouponSkipped(ctx, "invalid_or_expired")
			}
		}
	}

	insuranceFee := decimal.Zero
	if req.InsuranceOpted {
		insuranceFee = snapshot.InsuranceFee
	}

	finalTotal := grossTotal.Sub(couponDiscount).Add(insuranceFee)

	if s.metrics != nil {
		s.metrics.RecordPriceQuote(ctx, string(req.BookingType))
	}

	return &pricingdomain.Breakdown{
		Items:          details,
		BaseTotal:      baseTotal.Round(2),
		Taxes:          taxes.Round(2),
		GrossTotal:     grossTotal.Round(2),
		CouponDiscount: couponDiscount.Round(2),
		CouponApplied:  couponApplied,
		InsuranceFee:   insuranceFee.Round(2),
		FinalTotal:     finalTotal.Round(2),
	}, nil
}

func (s *service) priceStay(ctx context.Context, item pricingdomain.LineItem, nights int) (pricingdomain.ItemDetail, error) {
	room, err := s.catalog.RoomType(ctx, item.Ref)
	if err != nil {
		return pricingdomain.ItemDetail{}, err
	}
	if room == nil {
		return pricingdomain.ItemDetail{}, &pricingdomain.ItemNotFoundError{Ref: item.Ref}
	}

	quantity := normalizeQuantity(item.Quantity)
	multiplier := decimal.NewFromInt(int64(nights * quantity))

	// Room GST is computed per night at the property's own percent.
	base := room.DiscountedPrice().Mul(multiplier)
	tax := room.GSTAmount().Mul(multiplier)
	perNight := room.TotalPayable().Round(2)

	detail := pricingdomain.ItemDetail{
		Ref:          item.Ref,
		Name:         room.Name,
		Quantity:     quantity,
		Nights:       nights,
		PricePerUnit: &perNight,
		BaseAmount:   base,
		TaxAmount:    tax,
		Total:        base.Add(tax),
	}
	if room.Property != nil {
		detail.SubName = room.Property.Name
		detail.Location = fmt.Sprintf("%s, %s", room.Property.City, room.Property.State)
	}
	return detail, nil
}

func (s *service) pricePackage(ctx context.Context, item pricingdomain.LineItem, snapshot config.PricingSnapshot) (pricingdomain.ItemDetail, error) {
	pkg, err := s.catalog.HolidayPackage(ctx, item.Ref)
	if err != nil {
		return pricingdomain.ItemDetail{}, err
	}
	if pkg == nil {
		return pricingdomain.ItemDetail{}, &pricingdomain.ItemNotFoundError{Ref: item.Ref}
	}

	adults, children := normalizePax(item.Adults, item.Children)
	perPerson := pkg.PricePerPerson()
	base := perPerson.Mul(decimal.NewFromInt(int64(adults + children)))
	tax := base.Mul(snapshot.GSTRate)
	perPersonOut := perPerson.Round(2)

	return pricingdomain.ItemDetail{
		Ref:            item.Ref,
		Name:           pkg.Title,
		SubName:        fmt.Sprintf("%d Nights / %d Days", pkg.DurationNights, pkg.DurationDays),
		Location:       pkg.PrimaryLocation,
		Adults:         adults,
		Children:       children,
		PricePerPerson: &perPersonOut,
		BaseAmount:     base,
		TaxAmount:      tax,
		Total:          base.Add(tax),
	}, nil
}

func (s *service) priceActivity(ctx context.Context, item pricingdomain.LineItem, snapshot config.PricingSnapshot) (pricingdomain.ItemDetail, error) {
	act, err := s.catalog.Activity(ctx, item.Ref)
	if err != nil {
		return pricingdomain.ItemDetail{}, err
	}
	if act == nil {
		return pricingdomain.ItemDetail{}, &pricingdomain.ItemNotFoundError{Ref: item.Ref}
	}

	adults, children := normalizePax(item.Adults, item.Children)
	perPerson := act.PricePerPerson()
	base := perPerson.Mul(decimal.NewFromInt(int64(adults + children)))
	tax := base.Mul(snapshot.GSTRate)
	perPersonOut := perPerson.Round(2)

	inclusions := make([]pricingdomain.InclusionDetail, 0, len(act.Features)+len(act.Inclusions))
	for _, f := range act.Features {
		inclusions = append(inclusions, pricingdomain.InclusionDetail{
			Label:      string(f.FeatureType),
			IsIncluded: f.IsIncluded,
		})
	}
	for _, inc := range act.Inclusions {
		inclusions = append(inclusions, pricingdomain.InclusionDetail{
			Label:      inc.Text,
			IsIncluded: inc.IsIncluded,
		})
	}

	return pricingdomain.ItemDetail{
		Ref:            item.Ref,
		Name:           act.Title,
		SubName:        string(act.Difficulty),
		Location:       act.Location,
		Adults:         adults,
		Children:       children,
		PricePerPerson: &perPersonOut,
		BaseAmount:     base,
		TaxAmount:      tax,
		Total:          base.Add(tax),
		Inclusions:     inclusions,
	}, nil
}

func (s *service) priceCab(ctx context.Context, item pricingdomain.LineItem, nights int, snapshot config.PricingSnapshot) (pricingdomain.ItemDetail, error) {
	cab, err := s.catalog.Cab(ctx, item.Ref)
	if err != nil {
		return pricingdomain.ItemDetail{}, err
	}
	if cab == nil {
		return pricingdomain.ItemDetail{}, &pricingdomain.ItemNotFoundError{Ref: item.Ref}
	}

	quantity := normalizeQuantity(item.Quantity)
	base := cab.BasePrice.Mul(decimal.NewFromInt(int64(quantity * nights)))
	tax := base.Mul(snapshot.GSTRate)
	gross := base.Add(tax)
	perDay := cab.BasePrice.Round(2)

	inclusions := make([]pricingdomain.InclusionDetail, 0, len(cab.Inclusions))
	for _, inc := range cab.Inclusions {
		inclusions = append(inclusions, pricingdomain.InclusionDetail{
			Label:      inc.Label,
			Value:      inc.Value,
			IsIncluded: inc.IsIncluded,
		})
	}

	detail := pricingdomain.ItemDetail{
		Ref:            item.Ref,
		Name:           cab.Title,
		Location:       "Cab Service",
		Quantity:       quantity,
		Nights:         nights,
		PricePerUnit:   &perDay,
		BaseAmount:     base,
		TaxAmount:      tax,
		Total:          gross,
		PaymentOptions: cab.PaymentOptions(gross, snapshot.PartPaymentPercent),
		Inclusions:     inclusions,
	}
	if cab.Category != nil {
		detail.SubName = cab.Category.Name
	}
	if item.Cab != nil {
		detail.Location = item.Cab.PickupLocation
	}
	return detail, nil
}

func (s *service) priceHouseBoat(ctx context.Context, item pricingdomain.LineItem, nights int, snapshot config.PricingSnapshot) (pricingdomain.ItemDetail, error) {
	boat, err := s.catalog.HouseBoat(ctx, item.Ref)
	if err != nil {
		return pricingdomain.ItemDetail{}, err
	}
	if boat == nil {
		return pricingdomain.ItemDetail{}, &pricingdomain.ItemNotFoundError{Ref: item.Ref}
	}

	quantity := normalizeQuantity(item.Quantity)
	adults, children := normalizePax(item.Adults, item.Children)

	nightly := boat.NightlyDiscountedPrice()
	extraGuest := decimal.Zero
	acCharge := decimal.Zero
	if boat.Specification != nil {
		extraGuest = boat.Specification.ExtraGuestCharge(adults, children)
		if item.HouseBoat != nil && item.HouseBoat.FullTimeACOpted {
			acCharge = boat.Specification.FullTimeACPrice
		}
	}

	nightlyTotal := nightly.Add(extraGuest).Add(acCharge)
	multiplier := decimal.NewFromInt(int64(quantity * nights))
	base := nightlyTotal.Mul(multiplier)
	tax := base.Mul(snapshot.GSTRate)

	perNight := nightlyTotal.Round(2)
	extraGuestOut := extraGuest.Round(2)
	acChargeOut := acCharge.Round(2)

	detail := pricingdomain.ItemDetail{
		Ref:             item.Ref,
		Name:            boat.Name,
		Location:        boat.Location,
		Quantity:        quantity,
		Nights:          nights,
		Adults:          adults,
		Children:        children,
		PricePerUnit:    &perNight,
		ExtraGuestTotal: &extraGuestOut,
		ACCharge:        &acChargeOut,
		BaseAmount:      base,
		TaxAmount:       tax,
		Total:           base.Add(tax),
	}
	if boat.Specification != nil {
		detail.SubName = fmt.Sprintf("%d BHK", boat.Specification.Bedrooms)
	}
	return detail, nil
}

func normalizeQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}

func normalizePax(adults, children int) (int, int) {
	if adults < 1 {
		adults = 1
	}
	if children < 0 {
		children = 0
	}
	return adults, children
}

var _ pricingdomain.Service = (*service)(nil)
