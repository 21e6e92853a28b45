package engine

// Curated knowledge base. Built once at init, read-only afterwards; every
// entry is keyed by its canonical Key so completeness is checked at compile
// time through the constants in keys.go.

func rr(min, max float64) *RefRange { return &RefRange{Min: ptr(min), Max: ptr(max)} }
func rrMin(min float64) *RefRange   { return &RefRange{Min: ptr(min)} }
func rrMax(max float64) *RefRange   { return &RefRange{Max: ptr(max)} }

var curated = map[Key]Descriptor{
	KeyTestosteroneTotal: {
		ID:         KeyTestosteroneTotal,
		Label:      "Total Testosterone",
		Unit:       "ng/dL",
		Definition: "Total circulating testosterone, the primary androgen driving muscle mass, libido, bone density, and mood.",
		Ranges:     GenderRanges{Male: rr(300, 1000), Female: rr(15, 70)},
		RisksHigh:  []string{"Erythrocytosis and elevated hematocrit", "Acne and oily skin", "Suppression of endogenous production under exogenous use"},
		RisksLow:   []string{"Loss of muscle mass and strength", "Low libido and erectile dysfunction", "Fatigue, low mood, and reduced bone density"},
		Tips:       []string{"Collect between 7am and 10am, fasting", "Resistance training and adequate sleep support natural production", "Confirm a low result with a second morning sample"},
		Sources:    []Source{{Title: "Endocrine Society Clinical Practice Guideline", URL: "https://www.endocrine.org/clinical-practice-guidelines"}},
	},
	KeyTestosteroneFree: {
		ID:         KeyTestosteroneFree,
		Label:      "Free Testosterone",
		Unit:       "ng/dL",
		Definition: "The unbound, biologically active fraction of testosterone, unaffected by SHBG binding.",
		Ranges:     GenderRanges{Male: rr(9, 30), Female: rr(0.3, 1.9)},
		RisksHigh:  []string{"Androgenic effects such as acne and hair loss", "May indicate low SHBG"},
		RisksLow:   []string{"Hypogonadal symptoms despite normal total testosterone", "Often elevated SHBG masking availability"},
		Tips:       []string{"Interpret together with SHBG and total testosterone", "Equilibrium dialysis is the reference method"},
		Sources:    []Source{{Title: "Mayo Clinic Laboratories - Testosterone", URL: "https://www.mayocliniclabs.com"}},
	},
	KeyEstradiol: {
		ID:         KeyEstradiol,
		Label:      "Estradiol (E2)",
		Unit:       "pg/mL",
		Definition: "The main estrogen; in men it derives from aromatization of testosterone and regulates bone and libido.",
		Ranges:     GenderRanges{Male: rr(10, 40), Female: rr(30, 400)},
		RisksHigh:  []string{"Gynecomastia and water retention in men", "May reflect excess aromatase activity or adiposity"},
		RisksLow:   []string{"Reduced bone mineral density", "Joint discomfort and low libido"},
		Tips:       []string{"In women the expected value depends on cycle phase", "Sensitive (LC-MS) assays are preferred at male concentrations"},
		Sources:    []Source{{Title: "Endocrine Society - Estradiol testing", URL: "https://www.endocrine.org"}},
	},
	KeyProgesterone: {
		ID:         KeyProgesterone,
		Label:      "Progesterone",
		Unit:       "ng/mL",
		Definition: "Steroid hormone central to the luteal phase and pregnancy; present at low levels in men.",
		Ranges:     GenderRanges{Male: rr(0.2, 1.4), Female: rr(1.8, 24)},
		RisksHigh:  []string{"Usually physiological (luteal phase or pregnancy)", "Rarely adrenal pathology"},
		RisksLow:   []string{"Luteal insufficiency in women", "Anovulatory cycles"},
		Tips:       []string{"In women, draw around day 21 of the cycle for luteal assessment"},
		Sources:    []Source{{Title: "Mayo Clinic Laboratories - Progesterone", URL: "https://www.mayocliniclabs.com"}},
	},
	KeyCortisol: {
		ID:         KeyCortisol,
		Label:      "Cortisol",
		Unit:       "µg/dL",
		Definition: "The main glucocorticoid stress hormone, highest in the early morning and falling through the day.",
		Ranges:     GenderRanges{General: rr(6, 23)},
		RisksHigh:  []string{"Chronic stress, poor sleep, or Cushing syndrome", "Catabolic effect on muscle and bone", "Central fat accumulation"},
		RisksLow:   []string{"Adrenal insufficiency", "Fatigue, hypotension, and salt craving"},
		Tips:       []string{"Collect at 8am; the reference range assumes a morning draw", "Stress management and sleep hygiene lower chronically elevated values"},
		Sources:    []Source{{Title: "MedlinePlus - Cortisol test", URL: "https://medlineplus.gov/lab-tests/cortisol-test/"}},
	},
	KeyDHEAS: {
		ID:         KeyDHEAS,
		Label:      "DHEA-S",
		Unit:       "µg/dL",
		Definition: "Adrenal androgen precursor, a marker of adrenal reserve that declines steadily with age.",
		Ranges:     GenderRanges{Male: rr(100, 500), Female: rr(60, 400)},
		RisksHigh:  []string{"Adrenal hyperplasia or androgen excess", "Hirsutism and acne in women"},
		RisksLow:   []string{"Adrenal fatigue or insufficiency", "Associated with low vitality in aging"},
		Sources:    []Source{{Title: "Mayo Clinic Laboratories - DHEA-S", URL: "https://www.mayocliniclabs.com"}},
	},
	KeySHBG: {
		ID:         KeySHBG,
		Label:      "SHBG",
		Unit:       "nmol/L",
		Definition: "Sex hormone-binding globulin, the carrier protein that controls how much testosterone and estradiol circulate free.",
		Ranges:     GenderRanges{Male: rr(10, 57), Female: rr(18, 144)},
		RisksHigh:  []string{"Reduces free testosterone availability", "Seen with hyperthyroidism and low insulin"},
		RisksLow:   []string{"Associated with insulin resistance and fatty liver", "Raises the free androgen fraction"},
		Tips:       []string{"Always interpret alongside total testosterone"},
		Sources:    []Source{{Title: "MedlinePlus - SHBG blood test", URL: "https://medlineplus.gov/lab-tests/shbg-blood-test/"}},
	},
	KeyLH: {
		ID:         KeyLH,
		Label:      "LH",
		Unit:       "mIU/mL",
		Definition: "Luteinizing hormone from the pituitary; drives testicular testosterone production and ovulation.",
		Ranges:     GenderRanges{Male: rr(1.8, 8.6), Female: rr(2.4, 12.6)},
		RisksHigh:  []string{"Primary gonadal failure (the pituitary is compensating)"},
		RisksLow:   []string{"Secondary hypogonadism of pituitary or hypothalamic origin", "Suppressed by exogenous androgens"},
		Sources:    []Source{{Title: "Mayo Clinic Laboratories - LH", URL: "https://www.mayocliniclabs.com"}},
	},
	KeyFSH: {
		ID:         KeyFSH,
		Label:      "FSH",
		Unit:       "mIU/mL",
		Definition: "Follicle-stimulating hormone; supports spermatogenesis in men and follicular development in women.",
		Ranges:     GenderRanges{Male: rr(1.5, 12.4), Female: rr(3.5, 12.5)},
		RisksHigh:  []string{"Gonadal failure or menopause transition"},
		RisksLow:   []string{"Central suppression of the reproductive axis"},
		Sources:    []Source{{Title: "MedlinePlus - FSH test", URL: "https://medlineplus.gov/lab-tests/follicle-stimulating-hormone-fsh-levels-test/"}},
	},
	KeyProlactin: {
		ID:         KeyProlactin,
		Label:      "Prolactin",
		Unit:       "ng/mL",
		Definition: "Pituitary hormone; elevations suppress the gonadal axis in both sexes.",
		Ranges:     GenderRanges{Male: rr(2, 18), Female: rr(3, 30)},
		RisksHigh:  []string{"Suppresses LH, FSH, and testosterone", "May indicate prolactinoma or medication effect", "Galactorrhea and low libido"},
		RisksLow:   []string{"Rarely clinically significant"},
		Tips:       []string{"Avoid exercise and nipple stimulation before the draw", "Repeat a mildly elevated result before imaging"},
		Sources:    []Source{{Title: "Endocrine Society - Hyperprolactinemia guideline", URL: "https://www.endocrine.org/clinical-practice-guidelines"}},
	},
	KeyIGF1: {
		ID:         KeyIGF1,
		Label:      "IGF-1",
		Unit:       "ng/mL",
		Definition: "Insulin-like growth factor 1, the stable downstream readout of growth hormone secretion.",
		Ranges:     GenderRanges{General: rr(90, 360)},
		RisksHigh:  []string{"Acromegaly when markedly elevated", "Supraphysiologic GH exposure"},
		RisksLow:   []string{"Growth hormone deficiency", "Poor recovery and low lean mass"},
		Tips:       []string{"Values are strongly age-dependent; compare against age-adjusted ranges"},
		Sources:    []Source{{Title: "Mayo Clinic Laboratories - IGF-1", URL: "https://www.mayocliniclabs.com"}},
	},

	KeyTSH: {
		ID:         KeyTSH,
		Label:      "TSH",
		Unit:       "µIU/mL",
		Definition: "Thyroid-stimulating hormone, the most sensitive screening marker of thyroid function.",
		Ranges:     GenderRanges{General: rr(0.4, 4.0)},
		RisksHigh:  []string{"Hypothyroidism: fatigue, weight gain, cold intolerance", "Elevated LDL cholesterol"},
		RisksLow:   []string{"Hyperthyroidism: palpitations, weight loss, anxiety", "Atrial fibrillation risk when suppressed"},
		Tips:       []string{"Interpret with free T4 when out of range", "Biotin supplements can distort the assay; pause 48h before collection"},
		Sources:    []Source{{Title: "American Thyroid Association", URL: "https://www.thyroid.org"}},
	},
	KeyT4Free: {
		ID:         KeyT4Free,
		Label:      "Free T4",
		Unit:       "ng/dL",
		Definition: "Free thyroxine, the circulating thyroid hormone reservoir converted peripherally into active T3.",
		Ranges:     GenderRanges{General: rr(0.8, 1.8)},
		RisksHigh:  []string{"Thyrotoxicosis", "Over-replacement with levothyroxine"},
		RisksLow:   []string{"Overt hypothyroidism when TSH is also high"},
		Sources:    []Source{{Title: "American Thyroid Association", URL: "https://www.thyroid.org"}},
	},
	KeyT3Free: {
		ID:         KeyT3Free,
		Label:      "Free T3",
		Unit:       "pg/mL",
		Definition: "Free triiodothyronine, the metabolically active thyroid hormone.",
		Ranges:     GenderRanges{General: rr(2.3, 4.2)},
		RisksHigh:  []string{"T3 toxicosis", "Excess metabolic rate and muscle wasting"},
		RisksLow:   []string{"Low-T3 syndrome under caloric restriction or illness"},
		Tips:       []string{"Aggressive dieting commonly lowers free T3 before TSH moves"},
		Sources:    []Source{{Title: "American Thyroid Association", URL: "https://www.thyroid.org"}},
	},

	KeyWeight: {
		ID:         KeyWeight,
		Label:      "Body Weight",
		Unit:       "kg",
		Definition: "Total body mass; only meaningful as a trend and alongside body composition.",
		RisksHigh:  []string{"When driven by fat mass, raises cardiometabolic risk"},
		RisksLow:   []string{"Rapid unintentional loss warrants investigation"},
		Tips:       []string{"Weigh at the same time of day, fasted, for comparable trends"},
		Sources:    []Source{{Title: "WHO - Obesity and overweight", URL: "https://www.who.int/news-room/fact-sheets/detail/obesity-and-overweight"}},
	},
	KeyBMI: {
		ID:         KeyBMI,
		Label:      "Body Mass Index",
		Unit:       "kg/m²",
		Definition: "Weight divided by height squared; a population-level screening index, blind to body composition.",
		Ranges:     GenderRanges{General: rr(18.5, 24.9)},
		RisksHigh:  []string{"Correlates with metabolic syndrome at population level", "Overestimates risk in muscular individuals"},
		RisksLow:   []string{"Undernutrition and sarcopenia risk"},
		Tips:       []string{"Prefer body-fat percentage and waist circumference for individuals"},
		Sources:    []Source{{Title: "WHO - BMI classification", URL: "https://www.who.int"}},
	},
	KeyBodyFat: {
		ID:         KeyBodyFat,
		Label:      "Body Fat Percentage",
		Unit:       "%",
		Definition: "Share of total mass that is fat tissue, measured by bioimpedance, DEXA, or skinfolds.",
		Ranges:     GenderRanges{Male: rr(10, 20), Female: rr(18, 28)},
		RisksHigh:  []string{"Visceral fat drives insulin resistance and inflammation"},
		RisksLow:   []string{"Hormonal disruption at very low levels", "Impaired recovery and immunity"},
		Tips:       []string{"Use the same measurement method across time; absolute values differ between methods"},
		Sources:    []Source{{Title: "ACSM - Body composition guidelines", URL: "https://www.acsm.org"}},
	},
	KeyMuscleMass: {
		ID:         KeyMuscleMass,
		Label:      "Skeletal Muscle Mass",
		Unit:       "kg",
		Definition: "Estimated skeletal muscle tissue; the primary target of resistance training.",
		RisksHigh:  []string{"Rarely a concern outside rapid pharmacological gain"},
		RisksLow:   []string{"Sarcopenia, frailty, and reduced metabolic rate"},
		Tips:       []string{"Track the trend, not single readings; bioimpedance varies with hydration"},
		Sources:    []Source{{Title: "ACSM - Resistance training position stand", URL: "https://www.acsm.org"}},
	},
	KeyWaist: {
		ID:         KeyWaist,
		Label:      "Waist Circumference",
		Unit:       "cm",
		Definition: "Abdominal circumference at the navel, a direct proxy for visceral fat.",
		Ranges:     GenderRanges{Male: rrMax(94), Female: rrMax(80)},
		RisksHigh:  []string{"Visceral adiposity and cardiometabolic risk", "Strong predictor independent of BMI"},
		RisksLow:   []string{"Not clinically relevant"},
		Tips:       []string{"Measure relaxed, at the end of a normal exhale"},
		Sources:    []Source{{Title: "IDF - Metabolic syndrome criteria", URL: "https://www.idf.org"}},
	},

	KeyHbA1c: {
		ID:         KeyHbA1c,
		Label:      "HbA1c",
		Unit:       "%",
		Definition: "Glycated hemoglobin, reflecting average blood glucose over the previous two to three months.",
		Ranges:     GenderRanges{General: rr(4.0, 5.6)},
		RisksHigh:  []string{"Prediabetes from 5.7%, diabetes from 6.5%", "Microvascular damage with sustained elevation"},
		RisksLow:   []string{"May reflect recurrent hypoglycemia or anemia artifacts"},
		Tips:       []string{"Unaffected by fasting state; any time of day is valid"},
		Sources:    []Source{{Title: "ADA - Standards of Care in Diabetes", URL: "https://diabetesjournals.org/care"}},
	},
	KeyCholesterolTotal: {
		ID:         KeyCholesterolTotal,
		Label:      "Total Cholesterol",
		Unit:       "mg/dL",
		Definition: "Sum of all lipoprotein cholesterol fractions; a coarse screening value refined by LDL and HDL.",
		Ranges:     GenderRanges{General: rrMax(200)},
		RisksHigh:  []string{"Atherosclerotic cardiovascular risk when driven by LDL"},
		RisksLow:   []string{"Rarely significant; very low values occur in malnutrition"},
		Tips:       []string{"Interpret through the fractions, not the total alone"},
		Sources:    []Source{{Title: "Brazilian Directive on Dyslipidemias - SBC", URL: "https://www.portal.cardiol.br"}},
	},
	KeyLDL: {
		ID:         KeyLDL,
		Label:      "LDL Cholesterol",
		Unit:       "mg/dL",
		Definition: "Low-density lipoprotein cholesterol, the causal particle of atherosclerosis.",
		Ranges:     GenderRanges{General: rrMax(130)},
		RisksHigh:  []string{"Plaque formation and cardiovascular events", "Target thresholds tighten with overall risk"},
		RisksLow:   []string{"No lower limit of benefit established"},
		Tips:       []string{"Soluble fiber, unsaturated fats, and exercise lower LDL modestly"},
		Sources:    []Source{{Title: "ESC/EAS Dyslipidaemia Guidelines", URL: "https://www.escardio.org/Guidelines"}},
	},
	KeyHDL: {
		ID:         KeyHDL,
		Label:      "HDL Cholesterol",
		Unit:       "mg/dL",
		Definition: "High-density lipoprotein cholesterol, involved in reverse cholesterol transport.",
		Ranges:     GenderRanges{Male: rrMin(40), Female: rrMin(50)},
		RisksHigh:  []string{"Very high values no longer considered protective"},
		RisksLow:   []string{"Component of metabolic syndrome", "Associated with sedentary lifestyle and smoking"},
		Tips:       []string{"Aerobic exercise is the most reliable way to raise HDL"},
		Sources:    []Source{{Title: "ESC/EAS Dyslipidaemia Guidelines", URL: "https://www.escardio.org/Guidelines"}},
	},
	KeyTriglycerides: {
		ID:         KeyTriglycerides,
		Label:      "Triglycerides",
		Unit:       "mg/dL",
		Definition: "Circulating fat particles, highly responsive to diet, alcohol, and insulin sensitivity.",
		Ranges:     GenderRanges{General: rrMax(150)},
		RisksHigh:  []string{"Marker of insulin resistance", "Pancreatitis risk above 500 mg/dL"},
		RisksLow:   []string{"Not clinically relevant"},
		Tips:       []string{"Requires a 12h fast for a comparable result", "Cutting alcohol and refined carbohydrate acts within weeks"},
		Sources:    []Source{{Title: "ADA - Standards of Care in Diabetes", URL: "https://diabetesjournals.org/care"}},
	},
	KeyGlucose: {
		ID:         KeyGlucose,
		Label:      "Fasting Glucose",
		Unit:       "mg/dL",
		Definition: "Blood glucose after an overnight fast, the first-line screen for dysglycemia.",
		Ranges:     GenderRanges{General: rr(70, 99)},
		RisksHigh:  []string{"Prediabetes from 100 mg/dL, diabetes from 126 mg/dL", "Glycation damage to vessels and nerves"},
		RisksLow:   []string{"Hypoglycemia: tremor, confusion, and in severe cases loss of consciousness"},
		Tips:       []string{"Requires 8h of fasting", "Pair with HbA1c to distinguish a one-off spike from a chronic pattern"},
		Sources:    []Source{{Title: "ADA - Standards of Care in Diabetes", URL: "https://diabetesjournals.org/care"}},
	},
	KeyInsulin: {
		ID:         KeyInsulin,
		Label:      "Fasting Insulin",
		Unit:       "µU/mL",
		Definition: "Insulin concentration after fasting; elevated values flag insulin resistance years before glucose rises.",
		Ranges:     GenderRanges{General: rr(2, 25)},
		RisksHigh:  []string{"Insulin resistance and metabolic syndrome", "Compensatory hypersecretion preceding type 2 diabetes"},
		RisksLow:   []string{"Expected in lean, insulin-sensitive individuals", "Very low with glucose elevation suggests beta-cell failure"},
		Tips:       []string{"Combine with fasting glucose to estimate HOMA-IR"},
		Sources:    []Source{{Title: "NIH - Insulin resistance overview", URL: "https://www.niddk.nih.gov"}},
	},

	KeyHemoglobin: {
		ID:         KeyHemoglobin,
		Label:      "Hemoglobin",
		Unit:       "g/dL",
		Definition: "Oxygen-carrying protein of red blood cells; the central anemia marker.",
		Ranges:     GenderRanges{Male: rr(13.5, 17.5), Female: rr(12.0, 15.5)},
		RisksHigh:  []string{"Polycythemia, dehydration, or androgen use", "Increased blood viscosity"},
		RisksLow:   []string{"Anemia: fatigue, dyspnea, reduced performance", "Investigate iron, B12, and occult loss"},
		Sources:    []Source{{Title: "MedlinePlus - Hemoglobin test", URL: "https://medlineplus.gov/lab-tests/hemoglobin-test/"}},
	},
	KeyHematocrit: {
		ID:         KeyHematocrit,
		Label:      "Hematocrit",
		Unit:       "%",
		Definition: "Fraction of blood volume occupied by red cells.",
		Ranges:     GenderRanges{Male: rr(41, 53), Female: rr(36, 46)},
		RisksHigh:  []string{"Thrombosis risk from hyperviscosity", "Monitor closely under testosterone therapy"},
		RisksLow:   []string{"Anemia or hemodilution"},
		Sources:    []Source{{Title: "MedlinePlus - Hematocrit test", URL: "https://medlineplus.gov/lab-tests/hematocrit-test/"}},
	},
	KeyFerritin: {
		ID:         KeyFerritin,
		Label:      "Ferritin",
		Unit:       "ng/mL",
		Definition: "Iron storage protein; the earliest marker of depletion and also an acute-phase reactant.",
		Ranges:     GenderRanges{Male: rr(24, 336), Female: rr(11, 307)},
		RisksHigh:  []string{"Iron overload or hemochromatosis", "Inflammation can elevate it independently of iron"},
		RisksLow:   []string{"Iron deficiency before anemia appears", "Common in menstruating women and endurance athletes"},
		Tips:       []string{"Check CRP alongside to rule out inflammatory elevation"},
		Sources:    []Source{{Title: "Mayo Clinic Laboratories - Ferritin", URL: "https://www.mayocliniclabs.com"}},
	},

	KeyCreatinine: {
		ID:         KeyCreatinine,
		Label:      "Creatinine",
		Unit:       "mg/dL",
		Definition: "Muscle metabolism byproduct cleared by the kidneys; the everyday renal function marker.",
		Ranges:     GenderRanges{Male: rr(0.7, 1.3), Female: rr(0.6, 1.1)},
		RisksHigh:  []string{"Reduced glomerular filtration", "High muscle mass and creatine use raise it without renal disease"},
		RisksLow:   []string{"Low muscle mass or malnutrition"},
		Tips:       []string{"Pair with estimated GFR; a single value tracks muscle as much as kidney"},
		Sources:    []Source{{Title: "KDIGO - CKD evaluation guideline", URL: "https://kdigo.org/guidelines"}},
	},
	KeyALT: {
		ID:         KeyALT,
		Label:      "ALT (TGP)",
		Unit:       "U/L",
		Definition: "Alanine aminotransferase, the most liver-specific transaminase.",
		Ranges:     GenderRanges{Male: rr(10, 40), Female: rr(7, 35)},
		RisksHigh:  []string{"Hepatocellular stress: fatty liver, alcohol, medications", "Intense training can elevate it transiently"},
		RisksLow:   []string{"Not clinically relevant"},
		Tips:       []string{"Avoid heavy training for 48h before collection"},
		Sources:    []Source{{Title: "AASLD - Liver chemistry guidance", URL: "https://www.aasld.org"}},
	},
	KeyAST: {
		ID:         KeyAST,
		Label:      "AST (TGO)",
		Unit:       "U/L",
		Definition: "Aspartate aminotransferase, present in liver and muscle; rises with either tissue's injury.",
		Ranges:     GenderRanges{General: rr(10, 40)},
		RisksHigh:  []string{"Liver or muscle damage; compare with ALT and CK to localize"},
		RisksLow:   []string{"Not clinically relevant"},
		Sources:    []Source{{Title: "AASLD - Liver chemistry guidance", URL: "https://www.aasld.org"}},
	},
	KeyVitaminD: {
		ID:         KeyVitaminD,
		Label:      "Vitamin D (25-OH)",
		Unit:       "ng/mL",
		Definition: "25-hydroxyvitamin D, the storage form measured to assess vitamin D status.",
		Ranges:     GenderRanges{General: rr(30, 100)},
		RisksHigh:  []string{"Hypercalcemia from excessive supplementation"},
		RisksLow:   []string{"Bone loss and muscle weakness", "Common with low sun exposure", "Associated with impaired immunity"},
		Tips:       []string{"Midday sun on bare skin or 1000–2000 IU/day maintains most adults", "Retest 3 months after changing supplementation"},
		Sources:    []Source{{Title: "Endocrine Society - Vitamin D guideline", URL: "https://www.endocrine.org/clinical-practice-guidelines"}},
	},
	KeyVitaminB12: {
		ID:         KeyVitaminB12,
		Label:      "Vitamin B12",
		Unit:       "pg/mL",
		Definition: "Cobalamin, required for red cell production and neurological function.",
		Ranges:     GenderRanges{General: rr(200, 900)},
		RisksHigh:  []string{"Usually supplementation; rarely significant"},
		RisksLow:   []string{"Megaloblastic anemia", "Peripheral neuropathy and cognitive symptoms", "Frequent in vegans and metformin users"},
		Tips:       []string{"Values between 200 and 400 pg/mL may still be functionally low; methylmalonic acid clarifies"},
		Sources:    []Source{{Title: "NIH ODS - Vitamin B12 fact sheet", URL: "https://ods.od.nih.gov/factsheets/VitaminB12-HealthProfessional/"}},
	},
}

// Generic fallback prose used when no curated or learned entry exists.
const (
	genericDefinition = "Marker extracted from your exams. No curated reference data is available yet, so interpretation relies on the ranges printed on the lab report."
	genericRiskHigh   = "A value above the reference range printed on your report may deserve attention; discuss it with your physician."
	genericRiskLow    = "A value below the reference range printed on your report may deserve attention; discuss it with your physician."
	genericTip        = "Compare against the reference range of the issuing laboratory, since ranges vary between methods."
)

// Resolve returns the descriptor for a canonical key, falling back through
// the caller-supplied learned set and finally to a generic descriptor built
// around the raw label. It never returns a zero descriptor.
func Resolve(key Key, rawLabel string, learned map[Key]LearnedMarker) Descriptor {
	if key != KeyGeneric {
		if desc, ok := curated[key]; ok {
			desc.Origin = OriginCurated
			return desc
		}
	}

	if lm, ok := learned[key]; ok && key != KeyGeneric {
		return materializeLearned(lm)
	}

	label := rawLabel
	if label == "" {
		label = string(key)
	}
	return Descriptor{
		ID:         key,
		Label:      label,
		Definition: genericDefinition,
		RisksHigh:  []string{genericRiskHigh},
		RisksLow:   []string{genericRiskLow},
		Tips:       []string{genericTip},
		Origin:     OriginGeneric,
		IsGeneric:  true,
	}
}

func materializeLearned(lm LearnedMarker) Descriptor {
	desc := Descriptor{
		ID:         lm.Key,
		Label:      lm.Label,
		Unit:       lm.Unit,
		Definition: genericDefinition,
		RisksHigh:  []string{genericRiskHigh},
		RisksLow:   []string{genericRiskLow},
		Tips:       []string{genericTip},
		Origin:     OriginLearned,
		IsLearned:  true,
	}
	if lm.SourceURL != "" {
		desc.Sources = []Source{{Title: "External reference", URL: lm.SourceURL}}
	}
	if lm.MaleMin != nil || lm.MaleMax != nil {
		desc.Ranges.Male = &RefRange{Min: lm.MaleMin, Max: lm.MaleMax}
	}
	if lm.FemaleMin != nil || lm.FemaleMax != nil {
		desc.Ranges.Female = &RefRange{Min: lm.FemaleMin, Max: lm.FemaleMax}
	}
	return desc
}

// CuratedKeys lists every key with a curated descriptor, in no particular
// order. Used by sweep jobs and tests.
func CuratedKeys() []Key {
	keys := make([]Key, 0, len(curated))
	for k := range curated {
		keys = append(keys, k)
	}
	return keys
}
