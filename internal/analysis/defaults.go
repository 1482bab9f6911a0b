package analysis

import "github.com/hyppe-labs/scoriz/internal/model"

// DefaultResult returns the complete fallback report. It is a literal,
// fully-populated instance of the schema: the merger starts from it and
// the orchestrator returns it untouched when every generation call
// fails, so the dashboard never sees a partially-shaped object.
func DefaultResult() model.AnalysisResult {
	return model.AnalysisResult{
		UXScore: 70,
		DetailedScores: model.DetailedScores{
			Clarity:          65,
			Navigation:       70,
			Accessibility:    75,
			Performance:      80,
			MobileExperience: 60,
		},
		Recommendations: []model.Recommendation{
			{
				Title:       "Améliorer la clarté de la proposition de valeur",
				Description: "La proposition de valeur actuelle manque de clarté. Rendez-la plus concise et visible.",
				Impact:      model.ImpactHigh,
			},
			{
				Title:       "Optimiser les appels à l'action",
				Description: "Les CTA actuels ne sont pas assez visibles. Utilisez des couleurs contrastantes et des textes plus incitatifs.",
				Impact:      model.ImpactMedium,
			},
			{
				Title:       "Simplifier la navigation",
				Description: "La structure de navigation est complexe. Réduisez le nombre d'options et utilisez une hiérarchie plus claire.",
				Impact:      model.ImpactMedium,
			},
		},
		ValueProposition: model.ValueProposition{
			Current:              "Proposition de valeur actuelle",
			Strength:             "Points forts",
			Weakness:             "Points faibles",
			Improvement:          "Suggestions d'amélioration",
			CompetitorComparison: "Comparaison avec les concurrents",
		},
		MarketAnalysis: model.MarketAnalysis{
			Positioning: "Positionnement sur le marché",
			Competitors: []string{"Concurrent 1", "Concurrent 2", "Concurrent 3"},
			CompetitorDetails: []model.CompetitorDetail{
				{
					Name:               "Concurrent A",
					URL:                "https://concurrenta.com",
					Strengths:          "Interface utilisateur intuitive et design moderne. Proposition de valeur claire dès la page d'accueil.",
					Weaknesses:         "Offre moins complète que la vôtre. Temps de chargement plus lent sur mobile.",
					MarketShare:        35,
					MarketShareUnit:    "%",
					AnnualRevenue:      42.5,
					AnnualRevenueUnit:  "millions €",
					GrowthRate:         12.3,
					GrowthRateUnit:     "%",
					KeyDifferentiators: []string{"Expérience utilisateur primée", "Intégration avec les réseaux sociaux"},
				},
				{
					Name:               "Concurrent B",
					URL:                "https://concurrentb.com",
					Strengths:          "Forte présence sur les réseaux sociaux. Excellente stratégie de contenu avec blog très actif.",
					Weaknesses:         "Navigation complexe. Processus d'inscription en plusieurs étapes qui peut décourager les utilisateurs.",
					MarketShare:        25,
					MarketShareUnit:    "%",
					AnnualRevenue:      38.7,
					AnnualRevenueUnit:  "millions €",
					GrowthRate:         8.5,
					GrowthRateUnit:     "%",
					KeyDifferentiators: []string{"Stratégie de contenu premium", "Communauté d'utilisateurs active"},
				},
			},
			Trends: []model.MarketTrend{
				{
					Name:             "Adoption du mobile-first",
					Description:      "Transition accélérée vers des expériences conçues d'abord pour mobile, avec optimisation pour tous les appareils",
					Impact:           model.ImpactHigh,
					Timeframe:        "court terme",
					AdoptionRate:     78.5,
					AdoptionRateUnit: "%",
					Source:           "Rapport Mobile Experience 2023 - UX Alliance",
				},
				{
					Name:             "Personnalisation basée sur l'IA",
					Description:      "Utilisation croissante de l'intelligence artificielle pour personnaliser l'expérience utilisateur en temps réel",
					Impact:           model.ImpactMedium,
					Timeframe:        "moyen terme",
					AdoptionRate:     42.3,
					AdoptionRateUnit: "%",
					Source:           "Étude sur l'IA dans l'expérience client - Gartner",
				},
			},
			ConversionRate: model.ConversionRate{
				Estimated:             2.3,
				EstimatedUnit:         "%",
				IndustryAverage:       2.8,
				IndustryAverageUnit:   "%",
				Potential:             4.5,
				PotentialUnit:         "%",
				CompetitorAverage:     3.1,
				CompetitorAverageUnit: "%",
				TopPerformerRate:      5.7,
				TopPerformerRateUnit:  "%",
				Source:                "Benchmark de conversion e-commerce 2023 - ConversionXL",
			},
		},
		MarketData: model.MarketData{
			IndustryOverview: model.IndustryOverview{
				IndustryName:               "SaaS B2B pour la productivité d'entreprise",
				MarketSize:                 157.5,
				MarketSizeUnit:             "milliards €",
				AnnualGrowthRate:           11.7,
				AnnualGrowthRateUnit:       "%",
				TotalAddressableMarket:     215.3,
				TotalAddressableMarketUnit: "milliards €",
				MaturityStage:              "croissance",
				Source:                     "Rapport sur le marché SaaS 2023 - Forrester Research",
			},
			KeyPerformanceIndicators: []model.KPICategory{
				{
					Category: "Marketing",
					Metrics: []model.KPIMetric{
						{
							Name:              "Coût d'acquisition client (CAC)",
							Value:             1250,
							Unit:              "€",
							Benchmark:         1100,
							BenchmarkUnit:     "€",
							TopPerformerValue: 875,
							TopPerformerUnit:  "€",
							Description:       "Coût moyen pour acquérir un nouveau client, incluant tous les coûts marketing et vente",
							Source:            "SaaS Metrics Report 2023 - KeyBanc Capital Markets",
						},
						{
							Name:              "Taux de conversion des visiteurs en leads",
							Value:             3.2,
							Unit:              "%",
							Benchmark:         3.5,
							BenchmarkUnit:     "%",
							TopPerformerValue: 5.1,
							TopPerformerUnit:  "%",
							Description:       "Pourcentage de visiteurs qui deviennent des leads qualifiés",
							Source:            "B2B SaaS Conversion Benchmark - HubSpot Research",
						},
						{
							Name:              "Ratio CAC/LTV",
							Value:             3.2,
							Unit:              "ratio",
							Benchmark:         3.0,
							BenchmarkUnit:     "ratio",
							TopPerformerValue: 4.5,
							TopPerformerUnit:  "ratio",
							Description:       "Rapport entre la valeur vie client et le coût d'acquisition",
							Source:            "SaaS Capital Benchmark Report",
						},
					},
				},
				{
					Category: "Produit",
					Metrics: []model.KPIMetric{
						{
							Name:              "Taux de rétention mensuel",
							Value:             92.5,
							Unit:              "%",
							Benchmark:         90.0,
							BenchmarkUnit:     "%",
							TopPerformerValue: 96.0,
							TopPerformerUnit:  "%",
							Description:       "Pourcentage de clients qui restent abonnés d'un mois à l'autre",
							Source:            "SaaS Metrics Report 2023 - KeyBanc Capital Markets",
						},
						{
							Name:              "Net Promoter Score (NPS)",
							Value:             32,
							Unit:              "score",
							Benchmark:         30,
							BenchmarkUnit:     "score",
							TopPerformerValue: 45,
							TopPerformerUnit:  "score",
							Description:       "Mesure de la satisfaction et fidélité client",
							Source:            "B2B SaaS NPS Benchmark - CustomerGauge",
						},
						{
							Name:              "Temps moyen d'adoption des fonctionnalités clés",
							Value:             14.5,
							Unit:              "jours",
							Benchmark:         18.0,
							BenchmarkUnit:     "jours",
							TopPerformerValue: 9.0,
							TopPerformerUnit:  "jours",
							Description:       "Temps nécessaire pour qu'un nouvel utilisateur adopte les fonctionnalités principales",
							Source:            "Product Benchmark Report - ProductLed Institute",
						},
					},
				},
				{
					Category: "Financier",
					Metrics: []model.KPIMetric{
						{
							Name:              "Revenu mensuel récurrent (MRR)",
							Value:             850000,
							Unit:              "€",
							Benchmark:         750000,
							BenchmarkUnit:     "€",
							TopPerformerValue: 1250000,
							TopPerformerUnit:  "€",
							Description:       "Revenu prévisible généré chaque mois par les abonnements",
							Source:            "SaaS Metrics Report 2023 - KeyBanc Capital Markets",
						},
						{
							Name:              "Taux de croissance annuel",
							Value:             32.5,
							Unit:              "%",
							Benchmark:         28.0,
							BenchmarkUnit:     "%",
							TopPerformerValue: 45.0,
							TopPerformerUnit:  "%",
							Description:       "Taux de croissance annuel du revenu",
							Source:            "SaaS Growth Benchmark - OpenView Partners",
						},
						{
							Name:              "Marge brute",
							Value:             72.0,
							Unit:              "%",
							Benchmark:         70.0,
							BenchmarkUnit:     "%",
							TopPerformerValue: 80.0,
							TopPerformerUnit:  "%",
							Description:       "Pourcentage du revenu restant après les coûts directs",
							Source:            "SaaS Financial Metrics - ProfitWell",
						},
					},
				},
			},
			CustomerInsights: model.CustomerInsights{
				Segments: []model.CustomerSegment{
					{
						Name:                "PME (10-50 employés)",
						Size:                45.0,
						SizeUnit:            "%",
						AverageRevenue:      750,
						AverageRevenueUnit:  "€/mois",
						AcquisitionCost:     950,
						AcquisitionCostUnit: "€",
						RetentionRate:       85.0,
						RetentionRateUnit:   "%",
						LifetimeValue:       13500,
						LifetimeValueUnit:   "€",
					},
					{
						Name:                "Entreprises moyennes (51-250 employés)",
						Size:                35.0,
						SizeUnit:            "%",
						AverageRevenue:      2500,
						AverageRevenueUnit:  "€/mois",
						AcquisitionCost:     1800,
						AcquisitionCostUnit: "€",
						RetentionRate:       92.0,
						RetentionRateUnit:   "%",
						LifetimeValue:       45000,
						LifetimeValueUnit:   "€",
					},
				},
				CustomerJourney: model.JourneyMetrics{
					AverageConversionTime:       28.5,
					AverageConversionTimeUnit:   "jours",
					TouchpointsBeforeConversion: 8,
					AbandonmentRate:             68.0,
					AbandonmentRateUnit:         "%",
					MostEffectiveChannel:        "Démonstration produit",
					ChannelEffectivenessRate:    32.0,
					ChannelEffectivenessUnit:    "%",
				},
			},
			CompetitiveLandscape: model.CompetitiveLandscape{
				MarketConcentration:       45.0,
				MarketConcentrationUnit:   "%",
				TopPlayersMarketShare:     65.0,
				TopPlayersMarketShareUnit: "%",
				EntryBarriers: []string{
					"Coûts de développement élevés",
					"Fidélité des clients existants",
					"Besoin d'intégrations multiples",
				},
				DisruptiveThreats:  []string{"Solutions no-code", "Plateformes tout-en-un", "Nouveaux entrants avec IA avancée"},
				ConsolidationTrend: "modérée",
			},
			FutureForecast: model.FutureForecast{
				ShortTerm: model.ForecastPeriod{
					Timeframe:           "6-12 mois",
					ProjectedGrowth:     12.5,
					ProjectedGrowthUnit: "%",
					EmergingOpportunities: []string{
						"Intégration IA générative",
						"Solutions de collaboration hybride",
						"Automatisation des workflows",
					},
					PotentialThreats: []string{
						"Pression sur les prix",
						"Consolidation du marché",
						"Nouvelles réglementations de données",
					},
				},
				MediumTerm: model.ForecastPeriod{
					Timeframe:           "1-3 ans",
					ProjectedGrowth:     35.0,
					ProjectedGrowthUnit: "%",
					EmergingOpportunities: []string{
						"Expansion internationale",
						"Écosystème d'applications intégrées",
						"Solutions verticales spécialisées",
					},
					PotentialThreats: []string{
						"Saturation du marché",
						"Évolution des attentes clients",
						"Nouveaux modèles économiques disruptifs",
					},
				},
			},
			Sources: []model.DataSource{
				{
					Name:                 "SaaS Metrics Report 2023",
					Type:                 "Rapport",
					Publisher:            "KeyBanc Capital Markets",
					Year:                 2023,
					CredibilityScore:     9.2,
					CredibilityScoreUnit: "/10",
					URL:                  "https://www.key.com/businesses-institutions/industry-expertise/saas-survey.jsp",
				},
				{
					Name:                 "B2B SaaS Conversion Benchmark",
					Type:                 "Étude",
					Publisher:            "HubSpot Research",
					Year:                 2023,
					CredibilityScore:     8.7,
					CredibilityScoreUnit: "/10",
					URL:                  "https://research.hubspot.com/reports/b2b-saas-conversion",
				},
				{
					Name:                 "Rapport sur le marché SaaS",
					Type:                 "Analyse",
					Publisher:            "Forrester Research",
					Year:                 2023,
					CredibilityScore:     9.5,
					CredibilityScoreUnit: "/10",
					URL:                  "https://www.forrester.com/report/the-saas-market-outlook",
				},
			},
		},
		HeuristicAnalysis: defaultHeuristics(),
		UserJourney:       defaultJourney(),
	}
}

func defaultHeuristics() model.HeuristicAnalysis {
	return model.HeuristicAnalysis{
		Summary: model.HeuristicSummary{
			Strengths:      5,
			Improvements:   4,
			CriticalIssues: 1,
		},
		Principles: []model.HeuristicPrinciple{
			{
				Principle:       "Visibilité de l'état du système",
				Status:          model.StatusSuccess,
				Score:           8,
				Description:     "L'état du système est généralement bien visible",
				Details:         "Les utilisateurs peuvent voir clairement les options disponibles et les actions en cours. Le système fournit un retour visuel approprié pour la plupart des interactions.",
				Recommendations: "Ajouter des indicateurs de chargement pour les actions qui prennent du temps. Améliorer le feedback visuel pour les formulaires longs.",
			},
			{
				Principle:       "Correspondance entre le système et le monde réel",
				Status:          model.StatusWarning,
				Score:           6.5,
				Description:     "Le langage utilisé est en grande partie compréhensible",
				Details:         "Le site utilise un langage généralement compréhensible, mais certains termes techniques pourraient être simplifiés. Les métaphores visuelles sont parfois incohérentes avec les attentes des utilisateurs.",
				Recommendations: "Simplifier la terminologie, surtout dans les sections techniques. Utiliser des métaphores visuelles plus intuitives et cohérentes avec les conventions du web.",
			},
			{
				Principle:       "Contrôle et liberté de l'utilisateur",
				Status:          model.StatusWarning,
				Score:           6,
				Description:     "Les utilisateurs ont un certain contrôle sur leurs actions",
				Details:         "Le site offre des options pour annuler certaines actions, mais pas toutes. Les utilisateurs peuvent parfois se sentir piégés dans un processus sans possibilité de retour en arrière.",
				Recommendations: "Ajouter des options 'Annuler' et 'Retour' plus visibles. Permettre aux utilisateurs de sauvegarder leur progression dans les formulaires longs.",
			},
			{
				Principle:       "Cohérence et standards",
				Status:          model.StatusSuccess,
				Score:           8.5,
				Description:     "L'interface est cohérente dans son design",
				Details:         "Le site maintient une bonne cohérence visuelle et fonctionnelle. Les éléments d'interface se comportent comme attendu et suivent les conventions web standards.",
				Recommendations: "Standardiser davantage les icônes utilisées. Assurer une cohérence parfaite entre les différentes sections du site.",
			},
			{
				Principle:       "Prévention des erreurs",
				Status:          model.StatusWarning,
				Score:           5.5,
				Description:     "Des mesures sont en place pour prévenir les erreurs",
				Details:         "Le site dispose de certaines mesures pour prévenir les erreurs utilisateur, mais elles ne sont pas systématiques. La validation des formulaires intervient souvent après soumission plutôt qu'en temps réel.",
				Recommendations: "Implémenter une validation en temps réel des formulaires. Ajouter des confirmations pour les actions irréversibles. Fournir des exemples de format pour les champs complexes.",
			},
			{
				Principle:       "Reconnaissance plutôt que rappel",
				Status:          model.StatusSuccess,
				Score:           7.5,
				Description:     "Les utilisateurs peuvent facilement reconnaître les options disponibles",
				Details:         "Les options et fonctionnalités sont généralement visibles et reconnaissables. Les utilisateurs n'ont pas besoin de mémoriser des informations d'une page à l'autre.",
				Recommendations: "Améliorer la visibilité des fonctionnalités avancées. Ajouter des tooltips pour les options moins évidentes.",
			},
			{
				Principle:       "Flexibilité et efficacité",
				Status:          model.StatusSuccess,
				Score:           7,
				Description:     "L'interface permet une utilisation flexible",
				Details:         "Le site offre une certaine flexibilité d'utilisation, mais manque d'accélérateurs pour les utilisateurs expérimentés. La navigation peut être optimisée pour les utilisateurs réguliers.",
				Recommendations: "Ajouter des raccourcis clavier pour les actions fréquentes. Permettre la personnalisation de l'interface. Implémenter des fonctionnalités de recherche avancée.",
			},
			{
				Principle:       "Esthétique et design minimaliste",
				Status:          model.StatusSuccess,
				Score:           8,
				Description:     "Le design est esthétique et minimaliste",
				Details:         "L'interface est épurée et se concentre sur l'essentiel. La hiérarchie visuelle est claire et guide efficacement l'attention de l'utilisateur.",
				Recommendations: "Réduire encore la densité d'information sur certaines pages. Améliorer l'espacement et la typographie pour une meilleure lisibilité.",
			},
			{
				Principle:       "Aide à la reconnaissance et récupération des erreurs",
				Status:          model.StatusWarning,
				Score:           5,
				Description:     "L'aide à la récupération des erreurs est limitée",
				Details:         "Les messages d'erreur sont présents mais souvent trop techniques ou peu utiles. Les solutions proposées ne sont pas toujours claires pour l'utilisateur moyen.",
				Recommendations: "Réécrire les messages d'erreur en langage simple. Expliquer clairement la cause du problème et proposer des solutions concrètes. Utiliser des codes couleur cohérents pour les différents types d'erreurs.",
			},
			{
				Principle:       "Aide et documentation",
				Status:          model.StatusError,
				Score:           4,
				Description:     "La documentation est insuffisante",
				Details:         "L'aide et la documentation sont difficiles à trouver et souvent incomplètes. Les utilisateurs doivent chercher l'information par eux-mêmes sans contexte approprié.",
				Recommendations: "Créer une section d'aide accessible depuis toutes les pages. Intégrer une aide contextuelle directement dans l'interface. Développer des guides et tutoriels pour les fonctionnalités complexes.",
			},
		},
	}
}

func defaultJourney() model.UserJourney {
	return model.UserJourney{
		JourneySteps: []model.JourneyStep{
			{
				Stage:          "Découverte",
				Touchpoint:     "Page d'accueil",
				UserGoal:       "Comprendre rapidement l'offre et ses bénéfices",
				UserEmotion:    model.EmotionNeutral,
				FrictionPoints: []string{"Proposition de valeur pas assez visible", "Trop d'informations concurrentes"},
				Opportunities:  []string{"Simplifier le message principal", "Ajouter une vidéo explicative courte"},
			},
			{
				Stage:          "Considération",
				Touchpoint:     "Page de fonctionnalités",
				UserGoal:       "Évaluer si le produit répond à ses besoins",
				UserEmotion:    model.EmotionPositive,
				FrictionPoints: []string{"Navigation entre les fonctionnalités peu intuitive"},
				Opportunities:  []string{"Ajouter des cas d'usage concrets", "Améliorer la comparaison des offres"},
			},
			{
				Stage:          "Décision",
				Touchpoint:     "Page de tarification",
				UserGoal:       "Comprendre les options et choisir la plus adaptée",
				UserEmotion:    model.EmotionNegative,
				FrictionPoints: []string{"Structure de prix complexe", "Avantages des différentes offres pas assez clairs"},
				Opportunities:  []string{"Simplifier la grille tarifaire", "Ajouter un guide de sélection interactif"},
			},
			{
				Stage:          "Action",
				Touchpoint:     "Formulaire d'inscription",
				UserGoal:       "Créer un compte sans effort",
				UserEmotion:    model.EmotionNegative,
				FrictionPoints: []string{"Formulaire trop long", "Informations demandées trop tôt"},
				Opportunities:  []string{"Réduire les champs obligatoires", "Proposer une inscription en un clic"},
			},
			{
				Stage:          "Fidélisation",
				Touchpoint:     "Emails d'onboarding",
				UserGoal:       "Prendre en main le produit rapidement",
				UserEmotion:    model.EmotionNeutral,
				FrictionPoints: []string{"Onboarding générique peu personnalisé"},
				Opportunities:  []string{"Adapter l'onboarding au profil détecté", "Mettre en avant les premières victoires"},
			},
		},
		CriticalPoints: []string{
			"La transition entre la découverte et la considération manque de fluidité",
			"Le processus d'inscription demande trop d'informations trop tôt",
			"Les utilisateurs mobiles abandonnent souvent à l'étape de paiement",
		},
	}
}
