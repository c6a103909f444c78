package catalog

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

// seedProducts is the demo inventory.
func seedProducts() []Product {
	return []Product{
		{
			ID:            "prod-1",
			Name:          "Giày Thể Thao Air Max Classic",
			Price:         650_000,
			OriginalPrice: int64Ptr(890_000),
			Rating:        float64Ptr(4.8),
			ReviewCount:   190,
			Category:      "Giày",
			Image:         "https://images.unsplash.com/photo-1608380272894-b3617f04b463?w=1080",
			Description:   "Giày thể thao cao cấp với đệm êm ái, thiết kế hiện đại, phù hợp cho mọi hoạt động hàng ngày.",
			Sizes:         []string{"38.5", "39", "40", "40.5", "41", "42", "42.5", "43", "44", "44.5", "45", "45.5"},
			Colors:        []string{"Black/White", "White/Red", "Grey", "Blue/White"},
		},
		{
			ID:          "prod-2",
			Name:        "Giày Cao Cổ Jordan Basketball",
			Price:       890_000,
			Rating:      float64Ptr(4.6),
			ReviewCount: 124,
			Category:    "Giày",
			Image:       "https://images.unsplash.com/photo-1552346094-f0742e13b3b8?w=600",
			Sizes:       []string{"40", "41", "42", "43", "44"},
		},
		{
			ID:          "prod-3",
			Name:        "Giày Chạy Bộ UltraBoost Pro",
			Price:       750_000,
			Rating:      float64Ptr(4.7),
			ReviewCount: 86,
			Category:    "Giày",
			Image:       "https://images.unsplash.com/photo-1719759674376-a001dc166cb6?w=600",
			Sizes:       []string{"39", "40", "41", "42", "43"},
		},
		{
			ID:            "prod-4",
			Name:          "Giày Sneaker Trắng Tối Giản",
			Price:         450_000,
			OriginalPrice: int64Ptr(650_000),
			Rating:        float64Ptr(4.3),
			ReviewCount:   57,
			Category:      "Giày",
			Image:         "https://images.unsplash.com/photo-1573875133340-0b589f59a8c4?w=600",
			Sizes:         []string{"38", "39", "40", "41", "42"},
		},
		{
			ID:          "prod-5",
			Name:        "Dép Slides Thể Thao",
			Price:       250_000,
			Rating:      float64Ptr(4.1),
			ReviewCount: 203,
			Category:    "Dép",
			Image:       "https://images.unsplash.com/photo-1603487742131-4160ec999306?w=600",
			Sizes:       []string{"39", "40", "41", "42", "43", "44"},
		},
		{
			ID:            "prod-6",
			Name:          "Áo Thun Thể Thao Dri-Fit",
			Price:         180_000,
			OriginalPrice: int64Ptr(250_000),
			Rating:        float64Ptr(4.4),
			ReviewCount:   312,
			Category:      "Áo",
			Image:         "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600",
			Sizes:         []string{"S", "M", "L", "XL"},
		},
		{
			ID:          "prod-7",
			Name:        "Quần Short Chạy Bộ",
			Price:       220_000,
			Rating:      float64Ptr(4.2),
			ReviewCount: 98,
			Category:    "Quần",
			Image:       "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=600",
			Sizes:       []string{"S", "M", "L", "XL"},
		},
		{
			ID:          "prod-8",
			Name:        "Tất Thể Thao Cổ Cao",
			Price:       45_000,
			ReviewCount: 441,
			Category:    "Phụ Kiện",
			Image:       "https://images.unsplash.com/photo-1586350977771-b3b0abd50c82?w=600",
		},
		{
			ID:            "prod-9",
			Name:          "Balo Thể Thao Chống Nước",
			Price:         320_000,
			OriginalPrice: int64Ptr(420_000),
			Rating:        float64Ptr(4.5),
			ReviewCount:   67,
			Category:      "Phụ Kiện",
			Image:         "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600",
		},
		{
			ID:          "prod-10",
			Name:        "Giày Đá Bóng Sân Cỏ Nhân Tạo",
			Price:       540_000,
			Rating:      float64Ptr(4.0),
			ReviewCount: 33,
			Category:    "Giày",
			Image:       "https://images.unsplash.com/photo-1511886929837-354d827aae26?w=600",
			Sizes:       []string{"39", "40", "41", "42", "43"},
		},
	}
}
