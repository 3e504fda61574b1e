package catalog

import "ecolearn/internal/models"

// seedChallenges is the canonical list of available challenges.
// Keep ids stable because student records reference them.
func seedChallenges() []models.Challenge {
	return []models.Challenge{
		{
			ID:            "challenge-1",
			Title:         "Plant a Native Sapling",
			Description:   "Plant a native tree sapling in your locality and document its growth over a month",
			Category:      models.CategoryConservation,
			Difficulty:    "Medium",
			Points:        50,
			EstimatedTime: "2 hours",
			Requirements:  []string{"Native plant sapling", "Camera", "Measuring tape", "Water"},
			State:         "All States",
			Season:        "Monsoon",
			ImageURL:      "https://images.pexels.com/photos/1072179/pexels-photo-1072179.jpeg?auto=compress&cs=tinysrgb&w=400",
			Instructions: []string{
				"Research native trees suitable for your region",
				"Choose an appropriate location with adequate sunlight",
				"Dig a hole twice the size of the root ball",
				"Plant the sapling and water thoroughly",
				"Take before and after photos",
				"Measure and record the height weekly",
			},
		},
		{
			ID:            "challenge-2",
			Title:         "Waste Segregation Drive",
			Description:   "Organize a waste segregation awareness drive in your neighborhood",
			Category:      models.CategoryWaste,
			Difficulty:    "Hard",
			Points:        75,
			EstimatedTime: "4 hours",
			Requirements:  []string{"Colored bins/bags", "Information pamphlets", "Volunteers"},
			ImageURL:      "https://images.pexels.com/photos/3735218/pexels-photo-3735218.jpeg?auto=compress&cs=tinysrgb&w=400",
			Instructions: []string{
				"Create informative posters about waste segregation",
				"Gather volunteers from your community",
				"Set up segregation stations in your locality",
				"Educate neighbors about proper waste disposal",
				"Document the before and after impact",
				"Submit photos and participant feedback",
			},
		},
		{
			ID:            "challenge-3",
			Title:         "Rainwater Harvesting Setup",
			Description:   "Install a simple rainwater harvesting system at home",
			Category:      models.CategoryWater,
			Difficulty:    "Medium",
			Points:        60,
			EstimatedTime: "3 hours",
			Requirements:  []string{"Plastic containers", "PVC pipes", "Filter material", "Tools"},
			State:         "Rajasthan",
			Season:        "Pre-Monsoon",
			ImageURL:      "https://images.pexels.com/photos/1108701/pexels-photo-1108701.jpeg?auto=compress&cs=tinysrgb&w=400",
			Instructions: []string{
				"Design a simple collection system",
				"Connect gutters to collection containers",
				"Install basic filtration",
				"Test the system with initial rains",
				"Calculate water collected over a week",
				"Share your setup with photos and measurements",
			},
		},
		{
			ID:            "challenge-4",
			Title:         "Solar Cooker Experiment",
			Description:   "Build a simple solar cooker and cook a meal using solar energy",
			Category:      models.CategoryEnergy,
			Difficulty:    "Medium",
			Points:        55,
			EstimatedTime: "2.5 hours",
			Requirements:  []string{"Cardboard box", "Aluminum foil", "Black pot", "Glass/plastic cover"},
			ImageURL:      "https://images.pexels.com/photos/9875415/pexels-photo-9875415.jpeg?auto=compress&cs=tinysrgb&w=400",
			Instructions: []string{
				"Line a cardboard box with aluminum foil",
				"Place a black cooking pot inside",
				"Cover with glass or clear plastic",
				"Angle towards the sun for maximum heat",
				"Cook simple food like rice or vegetables",
				"Record cooking time and temperature achieved",
			},
		},
		{
			ID:            "challenge-5",
			Title:         "Butterfly Garden Creation",
			Description:   "Create a butterfly-friendly garden with native flowering plants",
			Category:      models.CategoryBiodiversity,
			Difficulty:    "Easy",
			Points:        40,
			EstimatedTime: "2 hours",
			Requirements:  []string{"Native flowering plants", "Garden tools", "Water source"},
			ImageURL:      "https://images.pexels.com/photos/56866/garden-rose-red-pink-56866.jpeg?auto=compress&cs=tinysrgb&w=400",
			Instructions: []string{
				"Research butterfly-attracting plants native to your area",
				"Prepare a sunny garden patch",
				"Plant in clusters for visibility",
				"Add a shallow water source",
				"Photograph visiting butterflies",
				"Maintain the garden for at least 2 weeks",
			},
		},
	}
}

// seedLessons is the canonical lesson content
func seedLessons() []models.Lesson {
	return []models.Lesson{
		{
			ID:          "lesson-1",
			Title:       "Climate Change Fundamentals",
			Description: "Understanding the basics of climate change and its impact on India",
			Duration:    45,
			Difficulty:  "Beginner",
			Category:    "Climate",
			Points:      25,
			ImageURL:    "https://images.pexels.com/photos/683535/pexels-photo-683535.jpeg?auto=compress&cs=tinysrgb&w=400",
			Content: models.LessonContent{
				Sections: []models.ContentSection{
					{
						Title:    "What is Climate Change?",
						Content:  "Climate change refers to long-term shifts in global temperatures and weather patterns. While climate variations are natural, scientific evidence shows that human activities since the 1800s have been the main driver of climate change.",
						ImageURL: "https://images.pexels.com/photos/683535/pexels-photo-683535.jpeg?auto=compress&cs=tinysrgb&w=400",
					},
					{
						Title:   "Impact on India",
						Content: "India is particularly vulnerable to climate change effects including rising temperatures, changing monsoon patterns, glacier melting in the Himalayas, and sea level rise affecting coastal areas.",
					},
					{
						Title:   "Greenhouse Effect",
						Content: "The greenhouse effect occurs when certain gases in the atmosphere trap heat from the sun. While this is natural and necessary for life, human activities have increased these gases, causing global warming.",
					},
				},
			},
			Quiz: models.Quiz{
				Questions: []models.Question{
					{
						Question:      "What is the main cause of current climate change?",
						Options:       []string{"Natural variations", "Human activities", "Solar radiation", "Ocean currents"},
						CorrectAnswer: 1,
						Explanation:   "Scientific consensus shows that human activities, particularly burning fossil fuels, are the primary cause of current climate change.",
					},
					{
						Question:      "Which region in India is most affected by glacier melting?",
						Options:       []string{"Western Ghats", "Himalayas", "Deccan Plateau", "Coastal Plains"},
						CorrectAnswer: 1,
						Explanation:   "The Himalayas are experiencing significant glacier melting due to rising temperatures, affecting water security for millions of people.",
					},
				},
			},
		},
		{
			ID:          "lesson-2",
			Title:       "Waste Management in India",
			Description: "Learn about effective waste management practices and their importance",
			Duration:    40,
			Difficulty:  "Beginner",
			Category:    "Waste Management",
			Points:      25,
			ImageURL:    "https://images.pexels.com/photos/3735218/pexels-photo-3735218.jpeg?auto=compress&cs=tinysrgb&w=400",
			Content: models.LessonContent{
				Sections: []models.ContentSection{
					{
						Title:   "The 3 Rs: Reduce, Reuse, Recycle",
						Content: "The waste management hierarchy prioritizes reducing consumption first, then reusing items, and finally recycling materials. This approach minimizes environmental impact and conserves resources.",
					},
					{
						Title:   "Waste Segregation",
						Content: "Proper waste segregation involves separating waste at source into different categories: biodegradable (green), non-biodegradable (blue), and hazardous waste (red). This makes processing more efficient.",
					},
					{
						Title:   "Composting at Home",
						Content: "Home composting converts organic waste into nutrient-rich fertilizer. Simple methods include pit composting, vermicomposting, and aerobic composting using kitchen scraps and garden waste.",
					},
				},
			},
			Quiz: models.Quiz{
				Questions: []models.Question{
					{
						Question:      "What does the first R in waste management stand for?",
						Options:       []string{"Recycle", "Reduce", "Reuse", "Refuse"},
						CorrectAnswer: 1,
						Explanation:   "Reduce is the first and most important R, focusing on minimizing waste generation at the source.",
					},
					{
						Question:      "Which color bin is used for biodegradable waste in India?",
						Options:       []string{"Blue", "Green", "Red", "Yellow"},
						CorrectAnswer: 1,
						Explanation:   "Green bins are designated for biodegradable waste like food scraps and garden waste.",
					},
				},
			},
		},
	}
}

// seedBadges is the canonical badge list
func seedBadges() []models.Badge {
	return []models.Badge{
		{
			ID:          models.BadgeEcoRookie,
			Name:        "Eco Rookie",
			Description: "Complete your first 5 environmental challenges",
			Criteria:    "Complete 5 challenges",
			Tier:        "Bronze",
			Category:    "Milestone",
			ImageURL:    "https://images.pexels.com/photos/1108701/pexels-photo-1108701.jpeg?auto=compress&cs=tinysrgb&w=150",
			Rarity:      "Common",
		},
		{
			ID:          models.BadgeTreeHugger,
			Name:        "Tree Hugger",
			Description: "Plant and nurture trees to help combat climate change",
			Criteria:    "Complete tree planting challenges",
			Tier:        "Silver",
			Category:    "Conservation",
			ImageURL:    "https://images.pexels.com/photos/1072179/pexels-photo-1072179.jpeg?auto=compress&cs=tinysrgb&w=150",
			Rarity:      "Rare",
		},
		{
			ID:          models.BadgeWasteWarrior,
			Name:        "Waste Warrior",
			Description: "Champion waste reduction and recycling in your community",
			Criteria:    "Complete waste management challenges",
			Tier:        "Silver",
			Category:    "Waste Management",
			ImageURL:    "https://images.pexels.com/photos/3735218/pexels-photo-3735218.jpeg?auto=compress&cs=tinysrgb&w=150",
			Rarity:      "Rare",
		},
		{
			ID:          "water-guardian",
			Name:        "Water Guardian",
			Description: "Protect and conserve water resources",
			Criteria:    "Complete water conservation challenges",
			Tier:        "Gold",
			Category:    "Water Conservation",
			ImageURL:    "https://images.pexels.com/photos/1108701/pexels-photo-1108701.jpeg?auto=compress&cs=tinysrgb&w=150",
			Rarity:      "Epic",
		},
		{
			ID:          models.BadgeGreenChampion,
			Name:        "Green Champion",
			Description: "Complete 15 environmental challenges across all categories",
			Criteria:    "Complete 15 challenges",
			Tier:        "Gold",
			Category:    "Milestone",
			ImageURL:    "https://images.pexels.com/photos/56866/garden-rose-red-pink-56866.jpeg?auto=compress&cs=tinysrgb&w=150",
			Rarity:      "Epic",
		},
		{
			ID:          "climate-champion",
			Name:        "Climate Champion",
			Description: "Master climate action and renewable energy challenges",
			Criteria:    "Complete climate and energy challenges",
			Tier:        "Platinum",
			Category:    "Climate Action",
			ImageURL:    "https://images.pexels.com/photos/683535/pexels-photo-683535.jpeg?auto=compress&cs=tinysrgb&w=150",
			Rarity:      "Legendary",
		},
	}
}

// seedShopItems is the canonical points shop inventory
func seedShopItems() []models.ShopItem {
	return []models.ShopItem{
		{
			ID:          "avatar-1",
			Name:        "Eco Warrior",
			Description: "A fierce environmental protector avatar",
			Category:    "avatars",
			Price:       150,
			ImageURL:    "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			ID:          "avatar-2",
			Name:        "Nature Guardian",
			Description: "Connected to the earth and all living things",
			Category:    "avatars",
			Price:       200,
			ImageURL:    "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			ID:          "avatar-3",
			Name:        "Solar Champion",
			Description: "Powered by renewable energy",
			Category:    "avatars",
			Price:       300,
			ImageURL:    "https://images.pexels.com/photos/1239288/pexels-photo-1239288.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			ID:          "achievement-1",
			Name:        "Green Thumb",
			Description: "Special badge for plant lovers",
			Category:    "achievements",
			Price:       100,
			ImageURL:    "https://images.pexels.com/photos/1072179/pexels-photo-1072179.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		{
			ID:          "achievement-2",
			Name:        "Climate Hero",
			Description: "Exclusive title for climate action leaders",
			Category:    "achievements",
			Price:       250,
			ImageURL:    "https://images.pexels.com/photos/683535/pexels-photo-683535.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		{
			ID:          "achievement-3",
			Name:        "Earth Savior",
			Description: "The ultimate environmental achievement",
			Category:    "achievements",
			Price:       500,
			ImageURL:    "https://images.pexels.com/photos/56866/garden-rose-red-pink-56866.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		{
			ID:          "powerup-1",
			Name:        "Double Points",
			Description: "2x points for next 3 challenges",
			Category:    "powerups",
			Price:       75,
			ImageURL:    "https://images.pexels.com/photos/1108701/pexels-photo-1108701.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		{
			ID:          "powerup-2",
			Name:        "Streak Shield",
			Description: "Protects your streak for 7 days",
			Category:    "powerups",
			Price:       125,
			ImageURL:    "https://images.pexels.com/photos/3735218/pexels-photo-3735218.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		{
			ID:          "powerup-3",
			Name:        "Instant Level Up",
			Description: "Immediately advance to next level",
			Category:    "powerups",
			Price:       400,
			ImageURL:    "https://images.pexels.com/photos/9875415/pexels-photo-9875415.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
	}
}
