package handler

import "github.com/dkcommerce/storefront-gateway/internal/core/domain"

func (r categoryRequest) toDomain(id int) domain.Category {
	return domain.Category{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		MainID:      r.MainID,
	}
}

func (r mainCategoryRequest) toDomain(id int) domain.MainCategory {
	return domain.MainCategory{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

func (r productRequest) toDomain(id int) domain.Product {
	return domain.Product{
		ID:               id,
		Name:             r.Name,
		Price:            r.Price,
		ImageURL:         r.ImageURL,
		CategoryID:       r.CategoryID,
		Description:      r.Description,
		RequiresShipping: r.RequiresShipping,
		WeightKg:         r.WeightKg,
		Color:            r.Color,
		LengthCm:         r.LengthCm,
		WidthCm:          r.WidthCm,
		HeightCm:         r.HeightCm,
		Badges:           r.Badges,
		Rating:           r.Rating,
		Reviews:          r.Reviews,
		InStock:          r.InStock,
		Specs:            r.Specs,
	}
}

func (r appointmentRequest) toDomain() domain.Appointment {
	return domain.Appointment{
		ParentName:    r.ParentName,
		ChildName:     r.ChildName,
		ChildAge:      r.ChildAge,
		ContactEmail:  r.ContactEmail,
		ContactPhone:  r.ContactPhone,
		PreferredDate: r.PreferredDate,
		PreferredTime: r.PreferredTime,
		Notes:         r.Notes,
		SessionMode:   r.SessionMode,
		Condition:     r.Condition,
		DoctorName:    r.DoctorName,
	}
}
