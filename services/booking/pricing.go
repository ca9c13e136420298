package booking

import "carebridge/models"

// PayableTotal computes the displayed total: the base service price minus
// the selected coupon's flat deduction. The coupon's minimum-spend floor is
// deliberately not checked here; whether it should be is an open product
// question and the floor lives on the coupon record for when it is settled.
func PayableTotal(svc models.Service, coupon *models.Coupon) float64 {
	if coupon == nil {
		return svc.Price
	}
	return svc.Price - coupon.Amount
}
