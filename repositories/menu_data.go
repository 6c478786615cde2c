package repositories

import "fartburger/models"

var defaultCategories = []models.Category{
	{ID: models.CategoryAll, Label: "Всё меню", Icon: "Grid"},
	{ID: "burgers", Label: "Бургеры", Icon: "Beef"},
	{ID: "snacks", Label: "Снеки", Icon: "Cookie"},
	{ID: "desserts", Label: "Десерты", Icon: "IceCream"},
	{ID: "drinks", Label: "Напитки", Icon: "Coffee"},
	{ID: "special", Label: "Особое", Icon: "Star"},
}

// Drinks list the container before the volume: option groups override the price in
// order, so the group that sets the price has to come last.
func containerChoices(second string) []models.Choice {
	return []models.Choice{
		{Label: "В стакане", Price: 0},
		{Label: second, Price: 0},
		{Label: "В стеклянной бутылке", Price: 0},
	}
}

var defaultMenu = []models.MenuItem{
	{
		ID:          "hamburger",
		Name:        "Гамбургер",
		Price:       89,
		Category:    "burgers",
		Description: "Классический бургер с сочной котлетой и фирменным соусом. Идеально для быстрого перекуса.",
		Ingredients: []string{"Две булочки", "Котлета говяжья", "Соус классический"},
		Protein:     15, Fat: 12, Carbs: 32,
		ImageURL: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
	},
	{
		ID:          "cheeseburger",
		Name:        "Чизбургер",
		Price:       109,
		Category:    "burgers",
		Description: "Гамбургер с добавлением нежного сыра. Насыщенный вкус для настоящих любителей сыра.",
		Ingredients: []string{"Две булочки", "Котлета говяжья", "Соус классический", "Один ломтик сыра"},
		Protein:     18, Fat: 15, Carbs: 33,
		ImageURL: "https://images.unsplash.com/photo-1572802419224-296b0aeee0d9?w=400",
	},
	{
		ID:          "chickenburger",
		Name:        "Чикенбургер",
		Price:       119,
		Category:    "burgers",
		Description: "Бургер с хрустящей куриной котлетой и свежим листом салата. Легкий и сочный вариант.",
		Ingredients: []string{"Две булочки", "Котлета куриная", "Соус классический", "Лист салата"},
		Protein:     20, Fat: 10, Carbs: 35,
		ImageURL: "https://images.unsplash.com/photo-1606755962773-d324e0a13086?w=400",
	},
	{
		ID:          "fartburger",
		Name:        "Фартбургер",
		Price:       199,
		Category:    "burgers",
		Description: "Наш фирменный бургер! Сочная котлета, свежие овощи и секретный соус делают его незабываемым.",
		Ingredients: []string{"Две булочки", "Котлета говяжья", "Соус классический", "Лист салата", "Три кусочка огурчика", "Два ломтика помидора"},
		Protein:     22, Fat: 18, Carbs: 38,
		ImageURL: "https://images.unsplash.com/photo-1550547660-d9450f859349?w=400",
	},
	{
		ID:          "fartburger-chicken",
		Name:        "Фартбургер куриный",
		Price:       199,
		Category:    "burgers",
		Description: "Легкая версия фирменного бургера с куриной котлетой. Все та же свежесть и вкус!",
		Ingredients: []string{"Две булочки", "Котлета куриная", "Соус классический", "Лист салата", "Три кусочка огурчика", "Два ломтика помидора"},
		Protein:     25, Fat: 12, Carbs: 40,
		ImageURL: "https://images.unsplash.com/photo-1565299507177-b0ac66763828?w=400",
	},
	{
		ID:          "fries",
		Name:        "Картофель фри",
		Price:       99,
		Category:    "snacks",
		Description: "Хрустящая золотистая картошка, жаренная во фритюре до идеального состояния.",
		Ingredients: []string{"Картошка жареная во фритюре"},
		Protein:     3, Fat: 15, Carbs: 35,
		Options: []models.OptionGroup{
			{Type: models.OptionSize, Choices: []models.Choice{
				{Label: "Маленькая", Price: 99},
				{Label: "Средняя", Price: 139},
				{Label: "Большая", Price: 199},
				{Label: "Огромная", Price: 299},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400",
	},
	{
		ID:          "nuggets",
		Name:        "Наггетсы",
		Price:       99,
		Category:    "snacks",
		Description: "Нежное куриное филе в хрустящей панировке. Отличная закуска для любого случая.",
		Ingredients: []string{"Куриное филе"},
		Protein:     18, Fat: 12, Carbs: 20,
		Options: []models.OptionGroup{
			{Type: models.OptionCount, Choices: []models.Choice{
				{Label: "3шт", Price: 99},
				{Label: "6шт", Price: 179},
				{Label: "9шт", Price: 249},
				{Label: "20шт", Price: 479},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1562967914-608f82629710?w=400",
	},
	{
		ID:          "pancakes",
		Name:        "Блины",
		Price:       99,
		Category:    "desserts",
		Description: "Традиционные блины с неожиданной изюминкой. Нежные, тающие во рту.",
		Ingredients: []string{"Самые обычные блины с изюминкой"},
		Protein:     8, Fat: 10, Carbs: 45,
		Options: []models.OptionGroup{
			{Type: models.OptionFilling, Choices: []models.Choice{
				{Label: "С шоколадом", Price: 0},
				{Label: "С маслом", Price: 0},
				{Label: "С ветчиной и сыром", Price: 0},
			}},
			{Type: models.OptionCount, Choices: []models.Choice{
				{Label: "1шт", Price: 99},
				{Label: "3шт", Price: 259},
				{Label: "5шт", Price: 399},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1528207776546-365bb710ee93?w=400",
	},
	{
		ID:          "icecream",
		Name:        "Мороженое",
		Price:       119,
		Category:    "desserts",
		Description: "Натуральное мороженое высшего качества. Освежающий десерт на любой вкус.",
		Ingredients: []string{"Самое обычное мороженое"},
		Protein:     4, Fat: 8, Carbs: 25,
		Options: []models.OptionGroup{
			{Type: models.OptionFlavor, Choices: []models.Choice{
				{Label: "Малиновое", Price: 139},
				{Label: "Шоколадное", Price: 149},
				{Label: "Пломбир", Price: 129},
				{Label: "С орехами", Price: 119},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=400",
	},
	{
		ID:          "milkshake",
		Name:        "МилкШейк",
		Price:       129,
		Category:    "desserts",
		Description: "Густой охлажденный коктейль из молока и мороженого. Идеальное дополнение к еде.",
		Ingredients: []string{"холодный и густой коктейль из молока и мороженого"},
		Protein:     6, Fat: 12, Carbs: 35,
		Options: []models.OptionGroup{
			{Type: models.OptionFlavor, Choices: []models.Choice{
				{Label: "Малиновый", Price: 139},
				{Label: "Шоколадный", Price: 159},
				{Label: "Пломбир", Price: 129},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=400",
	},
	{
		ID:          "coffee",
		Name:        "Кофе",
		Price:       99,
		Category:    "drinks",
		Description: "Ароматный кофе из свежеобжаренных зерен. Бодрящий напиток для продуктивного дня.",
		Ingredients: []string{"Состав зависит от вида кофе"},
		Protein:     2, Fat: 3, Carbs: 5,
		Options: []models.OptionGroup{
			{Type: models.OptionVariety, Choices: []models.Choice{
				{Label: "Латте", Price: 0},
				{Label: "Эспрессо", Price: 0},
				{Label: "Американо", Price: 0},
				{Label: "Флет Уайт", Price: 0},
				{Label: "Горячий шоколад", Price: 0},
				{Label: "Какао", Price: 0},
				{Label: "Раф", Price: 0},
				{Label: "Мокко", Price: 0},
			}},
			{Type: models.OptionSize, Choices: []models.Choice{
				{Label: "Маленький", Price: 99},
				{Label: "Средний", Price: 139},
				{Label: "Большой", Price: 179},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400",
	},
	{
		ID:          "tea",
		Name:        "Чай",
		Price:       99,
		Category:    "drinks",
		Description: "Отборный рассыпной чай высшего сорта. Традиционный напиток для души и тела.",
		Ingredients: []string{"Чай рассыпной"},
		Protein:     0, Fat: 0, Carbs: 2,
		Options: []models.OptionGroup{
			{Type: models.OptionVariety, Choices: []models.Choice{
				{Label: "Зелёный", Price: 0},
				{Label: "Чёрный", Price: 0},
			}},
			{Type: models.OptionSize, Choices: []models.Choice{
				{Label: "Маленький", Price: 99},
				{Label: "Средний", Price: 129},
				{Label: "Большой", Price: 159},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=400",
	},
	{
		ID:          "cola",
		Name:        "Кока кола",
		Price:       79,
		Category:    "drinks",
		Description: "Оригинальная Coca-Cola с неповторимым вкусом. Освежает и бодрит в любое время.",
		Ingredients: []string{"Оригинальная Кока кола"},
		Protein:     0, Fat: 0, Carbs: 42,
		Options: []models.OptionGroup{
			{Type: models.OptionContainer, Choices: containerChoices("В пластиковой бутылке")},
			{Type: models.OptionVolume, Choices: []models.Choice{
				{Label: "0.5л", Price: 79},
				{Label: "0.8л", Price: 99},
				{Label: "1.0л", Price: 119},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1554866585-cd94860890b7?w=400",
	},
	{
		ID:          "juice",
		Name:        "Сок",
		Price:       99,
		Category:    "drinks",
		Description: "Свежевыжатый сок из натуральных фруктов. Витамины и польза в каждом глотке.",
		Ingredients: []string{"Свежевыжатый сок"},
		Protein:     1, Fat: 0, Carbs: 25,
		Options: []models.OptionGroup{
			{Type: models.OptionContainer, Choices: containerChoices("В картонной коробке")},
			{Type: models.OptionVolume, Choices: []models.Choice{
				{Label: "0.5л", Price: 99},
				{Label: "0.8л", Price: 149},
				{Label: "1.0л", Price: 189},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400",
	},
	{
		ID:          "water",
		Name:        "Вода",
		Price:       49,
		Category:    "drinks",
		Description: "Чистая питьевая вода высшего качества. Основа здоровья и жизни.",
		Ingredients: []string{"Питьевая вода"},
		Protein:     0, Fat: 0, Carbs: 0,
		Options: []models.OptionGroup{
			{Type: models.OptionContainer, Choices: containerChoices("В пластиковой бутылке")},
			{Type: models.OptionVolume, Choices: []models.Choice{
				{Label: "0.5л", Price: 49},
				{Label: "0.8л", Price: 69},
				{Label: "1.0л", Price: 89},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1548839140-29a749e1cf4d?w=400",
	},
	{
		ID:          "mashed-potatoes",
		Name:        "Пюре с котлетой",
		Price:       159,
		Category:    "special",
		Description: "Домашнее нежное пюре с сочной котлетой. Комфортная еда, как дома.",
		Ingredients: []string{"Домашнее вкусное пюре с котлетой"},
		Protein:     18, Fat: 15, Carbs: 42,
		ImageURL: "https://images.unsplash.com/photo-1574484284002-952d92456975?w=400",
	},
}
