package seed

import (
	"tcm-quiz-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Questions returns the canonical seven-question quiz bank. Each question
// carries six options, A through E mapped to one body-type label each and F
// mapped to balanced.
func Questions() []entity.Question {
	return []entity.Question{
		{
			QuestionText:  "How do you usually feel during the day?",
			Description:   "Understanding your daily energy patterns helps identify your body constitution",
			QuestionOrder: 1,
			Options: []entity.Option{
				{OptionLetter: "A", OptionText: "Tired and sluggish, even after sleeping well.", ImageURL: "https://storage.tally.so/73ded632-02b6-41d3-8cf7-14b71c81a2f2/61382da8b4360.jpeg", BodyType: entity.BodyTypeQiDeficient},
				{OptionLetter: "B", OptionText: "Cold hands/feet, low energy in the morning.", ImageURL: "https://storage.tally.so/30e4f467-ad75-4861-8f14-70763c7a38d5/snow-frozen.gif", BodyType: entity.BodyTypeYangDeficient},
				{OptionLetter: "C", OptionText: "Overheated, dry mouth, restless at night.", ImageURL: "https://storage.tally.so/b5872bc9-6219-4eec-b4a5-2d0d60a7681c/donald-duck-dehydration.gif", BodyType: entity.BodyTypeYinDeficient},
				{OptionLetter: "D", OptionText: "Tense, irritable, especially under stress.", ImageURL: "https://storage.tally.so/5a013e1e-e5f2-4087-8bf7-7c0b380eecc4/b637b97509960ba654ec98b705cb7aa1.jpg", BodyType: entity.BodyTypeLiverQiStagnation},
				{OptionLetter: "E", OptionText: "Bloated, heavy, slightly oily or prone to breakouts.", ImageURL: "https://storage.tally.so/d654736d-0a35-4bbf-9800-51496b99d5d6/entf9hhpl8391.jpg", BodyType: entity.BodyTypeDampHeat},
				{OptionLetter: "F", OptionText: "None of the above.", ImageURL: "https://storage.tally.so/0eece42f-99f7-4ee1-9438-20e5f152c203/303krn.jpg", BodyType: entity.BodyTypeBalanced},
			},
		},
		{
			QuestionText:  "Which of these sounds most like your digestion?",
			Description:   "Digestive patterns reveal important clues about your body's internal balance",
			QuestionOrder: 2,
			Options: []entity.Option{
				{OptionLetter: "A", OptionText: "Low appetite, tired after eating.", ImageURL: "https://storage.tally.so/f3e92b77-69aa-4028-9e65-7c62b36fe9f5/low-appetite.jpg", BodyType: entity.BodyTypeQiDeficient},
				{OptionLetter: "B", OptionText: "Loose stools, sensitive stomach, can't handle raw foods.", ImageURL: "https://storage.tally.so/b0eb1c18-bba7-48ad-89a2-2d943d5eb2af/stomach-problems.jpg", BodyType: entity.BodyTypeYangDeficient},
				{OptionLetter: "C", OptionText: "Quick digestion, but get dry or constipated.", ImageURL: "https://storage.tally.so/87a8de7c-9d2a-4636-86d6-826d3f6e905f/constipation.jpg", BodyType: entity.BodyTypeYinDeficient},
				{OptionLetter: "D", OptionText: "Bloating or irregular appetite, worse when stressed.", ImageURL: "https://storage.tally.so/5f67b2a4-947c-4c38-84a3-5132a5f7a9e1/bloating.jpg", BodyType: entity.BodyTypeLiverQiStagnation},
				{OptionLetter: "E", OptionText: "Easily bloated, oily stools, bad breath.", ImageURL: "https://storage.tally.so/fbf88a6a-1d49-42d7-9b9b-0f84a6cfb16d/oily.jpg", BodyType: entity.BodyTypeDampHeat},
				{OptionLetter: "F", OptionText: "None of the above.", ImageURL: "https://storage.tally.so/0eece42f-99f7-4ee1-9438-20e5f152c203/303krn.jpg", BodyType: entity.BodyTypeBalanced},
			},
		},
		{
			QuestionText:  "How's your sleep lately?",
			Description:   "Sleep quality and patterns reflect your body's natural rhythms",
			QuestionOrder: 3,
			Options: []entity.Option{
				{OptionLetter: "A", OptionText: "Fall asleep quickly but still feel tired.", ImageURL: "https://storage.tally.so/131813ec-87b0-423a-934a-7b1d22557d05/reads-dont-fall-asleep-me-im-not-also-me-above-a-pic-of-ice-t-falling-asleep-sitting-in-a-chair.jpeg", BodyType: entity.BodyTypeQiDeficient},
				{OptionLetter: "B", OptionText: "Light sleep, wake easily from cold.", ImageURL: "https://storage.tally.so/82aa3860-d624-4004-b214-c422ecc9004c/9rve1p2fa0m61.webp", BodyType: entity.BodyTypeYangDeficient},
				{OptionLetter: "C", OptionText: "Trouble falling asleep, night sweats or vivid dreams.", ImageURL: "https://storage.tally.so/9ed95cf4-2d79-4137-8890-f341b01eb5e8/morning-trying-process-intense-symbolism-appeared-my-dreams.png", BodyType: entity.BodyTypeYinDeficient},
				{OptionLetter: "D", OptionText: "Wake up feeling stressed or with jaw tension.", ImageURL: "https://storage.tally.so/8c7adfa1-8995-4a4b-929b-19d28c05da97/stress.jpg", BodyType: entity.BodyTypeLiverQiStagnation},
				{OptionLetter: "E", OptionText: "Night sweats, body heat, toss and turn.", ImageURL: "https://storage.tally.so/7d06ad4b-734c-4d8b-874c-d25a1c33a843/7xpg92.jpg", BodyType: entity.BodyTypeDampHeat},
				{OptionLetter: "F", OptionText: "None of the above.", ImageURL: "https://storage.tally.so/0eece42f-99f7-4ee1-9438-20e5f152c203/303krn.jpg", BodyType: entity.BodyTypeBalanced},
			},
		},
		{
			QuestionText:  "What best describes your emotional state?",
			Description:   "Emotional patterns are closely connected to your body constitution",
			QuestionOrder: 4,
			Options: []entity.Option{
				{OptionLetter: "A", OptionText: "Generally calm but easily overwhelmed.", ImageURL: "https://storage.tally.so/1d8fa3be-1234-4bcd-9a2a-abcde1111111/calm.jpg", BodyType: entity.BodyTypeQiDeficient},
				{OptionLetter: "B", OptionText: "Stable but sometimes feel unmotivated.", ImageURL: "https://storage.tally.so/2a3b4c5d-2222-4bbb-8c8c-222222222222/unmotivated.jpg", BodyType: entity.BodyTypeYangDeficient},
				{OptionLetter: "C", OptionText: "Anxious or restless, especially in the evening.", ImageURL: "https://storage.tally.so/3c4d5e6f-3333-4aaa-9ddd-333333333333/anxious.jpg", BodyType: entity.BodyTypeYinDeficient},
				{OptionLetter: "D", OptionText: "Irritable, mood swings, especially when stressed.", ImageURL: "https://storage.tally.so/4d5e6f7a-4444-4ccc-8eee-444444444444/irritable.jpg", BodyType: entity.BodyTypeLiverQiStagnation},
				{OptionLetter: "E", OptionText: "Sometimes feel foggy or unclear thinking.", ImageURL: "https://storage.tally.so/5e6f7a8b-5555-4ddd-9fff-555555555555/foggy.jpg", BodyType: entity.BodyTypeDampHeat},
				{OptionLetter: "F", OptionText: "Generally stable and positive.", ImageURL: "https://storage.tally.so/0eece42f-99f7-4ee1-9438-20e5f152c203/303krn.jpg", BodyType: entity.BodyTypeBalanced},
			},
		},
		{
			QuestionText:  "How do you typically respond to stress?",
			Description:   "Stress responses reveal your body's natural coping mechanisms",
			QuestionOrder: 5,
			Options: []entity.Option{
				{OptionLetter: "A", OptionText: "Feel exhausted and need to rest.", ImageURL: "https://storage.tally.so/7a8b9c0d-7777-4fff-9111-777777777777/exhausted.jpg", BodyType: entity.BodyTypeQiDeficient},
				{OptionLetter: "B", OptionText: "Feel cold and want to curl up.", ImageURL: "https://storage.tally.so/8b9c0d1e-8888-4000-9222-888888888888/cold.jpg", BodyType: entity.BodyTypeYangDeficient},
				{OptionLetter: "C", OptionText: "Feel hot, sweaty, and restless.", ImageURL: "https://storage.tally.so/9c0d1e2f-9999-4111-9333-999999999999/hot_restless.jpg", BodyType: entity.BodyTypeYinDeficient},
				{OptionLetter: "D", OptionText: "Feel angry, tense, or frustrated.", ImageURL: "https://storage.tally.so/ad1e2f3g-aaaa-4222-9444-aaaaaaaaaaaa/angry.jpg", BodyType: entity.BodyTypeLiverQiStagnation},
				{OptionLetter: "E", OptionText: "Feel heavy, foggy, or sluggish.", ImageURL: "https://storage.tally.so/bd2f3g4h-bbbb-4333-9555-bbbbbbbbbbbb/heavy.jpg", BodyType: entity.BodyTypeDampHeat},
				{OptionLetter: "F", OptionText: "Handle stress well with good coping strategies.", ImageURL: "https://storage.tally.so/0eece42f-99f7-4ee1-9438-20e5f152c203/303krn.jpg", BodyType: entity.BodyTypeBalanced},
			},
		},
		{
			QuestionText:  "What describes your skin condition?",
			Description:   "Skin health reflects your internal body balance and constitution",
			QuestionOrder: 6,
			Options: []entity.Option{
				{OptionLetter: "A", OptionText: "Pale, dull, or easily bruised.", ImageURL: "https://storage.tally.so/d34f5a00-dddd-4eee-9777-dddddddddddd/pale_skin.jpg", BodyType: entity.BodyTypeQiDeficient},
				{OptionLetter: "B", OptionText: "Pale, cool to touch, slow to heal.", ImageURL: "https://storage.tally.so/e45g6b11-eeee-4fff-9888-eeeeeeeeeeee/cool_heal.jpg", BodyType: entity.BodyTypeYangDeficient},
				{OptionLetter: "C", OptionText: "Dry, itchy, or prone to rashes.", ImageURL: "https://storage.tally.so/f56h7c22-ffff-4000-9999-ffffffffffff/dry_itchy.jpg", BodyType: entity.BodyTypeYinDeficient},
				{OptionLetter: "D", OptionText: "Oily in T-zone, prone to breakouts.", ImageURL: "https://storage.tally.so/012i3j33-0000-4111-1000-000000000000/oily_tzone.jpg", BodyType: entity.BodyTypeLiverQiStagnation},
				{OptionLetter: "E", OptionText: "Oily, acne-prone, or eczema.", ImageURL: "https://storage.tally.so/123j4k44-1111-4222-2111-111111111111/acne_eczema.jpg", BodyType: entity.BodyTypeDampHeat},
				{OptionLetter: "F", OptionText: "Clear, healthy, and well-balanced.", ImageURL: "https://storage.tally.so/0eece42f-99f7-4ee1-9438-20e5f152c203/303krn.jpg", BodyType: entity.BodyTypeBalanced},
			},
		},
		{
			QuestionText:  "How would you describe your appetite and eating habits?",
			Description:   "Eating patterns and appetite reveal your body's digestive constitution",
			QuestionOrder: 7,
			Options: []entity.Option{
				{OptionLetter: "A", OptionText: "Low appetite, prefer small frequent meals.", ImageURL: "https://storage.tally.so/345l6m66-3333-4444-4333-333333333333/low_appetite2.jpg", BodyType: entity.BodyTypeQiDeficient},
				{OptionLetter: "B", OptionText: "Prefer warm, cooked foods, dislike cold drinks.", ImageURL: "https://storage.tally.so/456m7n77-4444-4555-5444-444444444444/warm_foods.jpg", BodyType: entity.BodyTypeYangDeficient},
				{OptionLetter: "C", OptionText: "Strong appetite, prefer cooling foods.", ImageURL: "https://storage.tally.so/567n8o88-5555-4666-6555-555555555555/cooling_foods.jpg", BodyType: entity.BodyTypeYinDeficient},
				{OptionLetter: "D", OptionText: "Irregular appetite, worse when stressed.", ImageURL: "https://storage.tally.so/678o9p99-6666-4777-7666-666666666666/irregular_appetite.jpg", BodyType: entity.BodyTypeLiverQiStagnation},
				{OptionLetter: "E", OptionText: "Good appetite but feel heavy after eating.", ImageURL: "https://storage.tally.so/789p0q00-7777-4888-8777-777777777777/heavy_after_eat.jpg", BodyType: entity.BodyTypeDampHeat},
				{OptionLetter: "F", OptionText: "Healthy appetite, enjoy variety of foods.", ImageURL: "https://storage.tally.so/0eece42f-99f7-4ee1-9438-20e5f152c203/303krn.jpg", BodyType: entity.BodyTypeBalanced},
			},
		},
	}
}

// ResultProfiles returns one descriptive profile per body-type label.
func ResultProfiles() []entity.ResultProfile {
	return []entity.ResultProfile{
		{
			BodyType:        entity.BodyTypeQiDeficient,
			Title:           "Qi Deficient",
			Description:     "Low energy, pale complexion, fatigue after activity.",
			Recommendations: entity.StringList{"Gentle tonics", "rest", "easy exercise"},
			FoodsToAvoid:    entity.StringList{"Cold/raw foods", "overwork"},
			FoodsToEat:      entity.StringList{"Warm cooked grains", "soups"},
			LifestyleTips:   entity.StringList{"Gentle exercise", "regular meals"},
		},
		{
			BodyType:        entity.BodyTypeYangDeficient,
			Title:           "Yang Deficient",
			Description:     "Cold sensations, low warmth, low metabolic drive.",
			Recommendations: entity.StringList{"Warming foods and herbs"},
			FoodsToAvoid:    entity.StringList{"Cold/raw foods", "excessive cold exposure"},
			FoodsToEat:      entity.StringList{"Warm, cooked meals", "ginger teas"},
			LifestyleTips:   entity.StringList{"Keep warm", "avoid drafts"},
		},
		{
			BodyType:        entity.BodyTypeYinDeficient,
			Title:           "Yin Deficient",
			Description:     "Dryness, restlessness, night sweats.",
			Recommendations: entity.StringList{"Nourish yin with cooling, moistening foods"},
			FoodsToAvoid:    entity.StringList{"Excessive heating/spicy foods"},
			FoodsToEat:      entity.StringList{"Soups", "cooling fruits", "black sesame"},
			LifestyleTips:   entity.StringList{"Avoid overheating", "rest"},
		},
		{
			BodyType:        entity.BodyTypeLiverQiStagnation,
			Title:           "Liver Qi Stagnation",
			Description:     "Irritability, stress-related tension.",
			Recommendations: entity.StringList{"Stress reduction", "move Qi"},
			FoodsToAvoid:    entity.StringList{"Greasy/heavy foods"},
			FoodsToEat:      entity.StringList{"Bitter greens", "light proteins"},
			LifestyleTips:   entity.StringList{"Breathwork", "movement"},
		},
		{
			BodyType:        entity.BodyTypeDampHeat,
			Title:           "Damp-Heat",
			Description:     "Oily skin, heaviness, bloating.",
			Recommendations: entity.StringList{"Clear damp-heat with herbs and diet"},
			FoodsToAvoid:    entity.StringList{"Greasy spicy foods", "alcohol"},
			FoodsToEat:      entity.StringList{"Cooling, light foods", "vegetables"},
			LifestyleTips:   entity.StringList{"Avoid dairy/sugary foods"},
		},
		{
			BodyType:        entity.BodyTypeBalanced,
			Title:           "Balanced",
			Description:     "Generally stable; maintain healthy habits.",
			Recommendations: entity.StringList{"Maintain balance with varied diet & lifestyle"},
			FoodsToAvoid:    entity.StringList{},
			FoodsToEat:      entity.StringList{"Varied whole foods"},
			LifestyleTips:   entity.StringList{"Regular sleep and movement"},
		},
	}
}

// Practitioners returns the default practitioner directory.
func Practitioners() []entity.Practitioner {
	return []entity.Practitioner{
		{
			Name:         "Dr. Sarah Chen",
			Title:        "Licensed Acupuncturist & TCM Practitioner",
			Specialties:  entity.StringList{"Pain Management", "Digestive Health", "Women's Health", "Fertility Support"},
			Experience:   "8 years",
			Rating:       decimal.NewFromFloat(4.9),
			ReviewsCount: 127,
			Bio:          "Dr. Sarah Chen specializes in pain management and digestive health with a focus on personalized herbal treatments. She has helped hundreds of patients achieve better health through Traditional Chinese Medicine.",
			Availability: "Available this week",
			ImageURL:     "/doctor.png",
		},
		{
			Name:         "Dr. Michael Rodriguez",
			Title:        "Traditional Chinese Medicine Doctor",
			Specialties:  entity.StringList{"Stress & Anxiety", "Sleep Disorders", "Immune Support", "Mental Health"},
			Experience:   "12 years",
			Rating:       decimal.NewFromFloat(4.8),
			ReviewsCount: 89,
			Bio:          "Dr. Michael Rodriguez is an expert in stress management and sleep optimization using TCM principles and herbal medicine. He combines ancient wisdom with modern understanding.",
			Availability: "Available next week",
			ImageURL:     "/doctor.png",
		},
		{
			Name:         "Dr. Emily Watson",
			Title:        "Herbal Medicine Specialist",
			Specialties:  entity.StringList{"Skin Health", "Hormonal Balance", "Detoxification", "Anti-aging"},
			Experience:   "6 years",
			Rating:       decimal.NewFromFloat(4.9),
			ReviewsCount: 156,
			Bio:          "Dr. Emily Watson focuses on skin health and hormonal balance through personalized herbal formulas and lifestyle guidance. She has a passion for helping patients achieve radiant health.",
			Availability: "Available this week",
			ImageURL:     "/doctor.png",
		},
		{
			Name:         "Dr. James Liu",
			Title:        "Senior TCM Physician",
			Specialties:  entity.StringList{"Chronic Pain", "Autoimmune Conditions", "Cancer Support", "Longevity"},
			Experience:   "15 years",
			Rating:       decimal.NewFromFloat(4.7),
			ReviewsCount: 203,
			Bio:          "Dr. James Liu is a senior TCM physician with extensive experience in treating chronic conditions and supporting cancer patients. He brings deep knowledge of classical Chinese medicine.",
			Availability: "Available next week",
			ImageURL:     "/doctor.png",
		},
		{
			Name:         "Dr. Maria Santos",
			Title:        "Integrative Medicine Practitioner",
			Specialties:  entity.StringList{"Weight Management", "Diabetes Support", "Cardiovascular Health", "Wellness Coaching"},
			Experience:   "10 years",
			Rating:       decimal.NewFromFloat(4.8),
			ReviewsCount: 142,
			Bio:          "Dr. Maria Santos combines TCM with modern integrative medicine approaches. She specializes in metabolic health and preventive care, helping patients achieve sustainable wellness.",
			Availability: "Available this week",
			ImageURL:     "/doctor.png",
		},
		{
			Name:         "Dr. David Kim",
			Title:        "TCM Sports Medicine Specialist",
			Specialties:  entity.StringList{"Sports Injuries", "Muscle Recovery", "Performance Enhancement", "Rehabilitation"},
			Experience:   "7 years",
			Rating:       decimal.NewFromFloat(4.9),
			ReviewsCount: 98,
			Bio:          "Dr. David Kim specializes in sports medicine using TCM principles. He helps athletes and active individuals recover from injuries and optimize their performance naturally.",
			Availability: "Available next week",
			ImageURL:     "/doctor.png",
		},
	}
}
