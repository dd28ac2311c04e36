package catalog

import "asg-backend-V2.0/internal/model"

// Default returns the built-in question catalog and weight tables, used when
// the config does not point at an external catalog file. Question wording is
// kept in the evaluators' working language.
func Default() *Catalog {
	cat := &Catalog{
		Questions: defaultQuestions,
		PhaseWeights: map[model.Phase]PillarWeights{
			model.PhaseFeasibility:  {Environmental: 0.4, Social: 0.3, Governance: 0.3},
			model.PhaseDesign:       {Environmental: 0.4, Social: 0.3, Governance: 0.3},
			model.PhaseConstruction: {Environmental: 0.35, Social: 0.35, Governance: 0.3},
		},
		OverallWeights: PhaseWeights{Feasibility: 0.3, Design: 0.3, Construction: 0.4},
	}
	cat.index()
	return cat
}

var defaultQuestions = []Question{
	// Información del proyecto
	{ID: "info_1", Phase: model.PhaseFeasibility, Pillar: model.PillarGovernance, Category: "Información del Proyecto",
		Text: "Cronograma (tiempo estimado del proyecto)", ResponseType: model.ResponseTexto, Weight: 0.05, IsRequired: true},
	{ID: "info_2", Phase: model.PhaseFeasibility, Pillar: model.PillarGovernance, Category: "Información del Proyecto",
		Text: "Área total (m2)", ResponseType: model.ResponseTexto, Weight: 0.05, IsRequired: true},
	{ID: "info_3", Phase: model.PhaseFeasibility, Pillar: model.PillarGovernance, Category: "Información del Proyecto",
		Text: "Precio del terreno", ResponseType: model.ResponseTexto, Weight: 0.05, IsRequired: true},
	{ID: "info_4", Phase: model.PhaseFeasibility, Pillar: model.PillarGovernance, Category: "Información del Proyecto",
		Text: "Proyección retorno de inversión", ResponseType: model.ResponseTexto, Weight: 0.05, IsRequired: true},

	// Evaluación técnica
	{ID: "tech_1", Phase: model.PhaseFeasibility, Pillar: model.PillarEnvironmental, Category: "Evaluación Técnica",
		Text: "¿El proyecto cuenta con un estudio topográfico actualizado y validado?", ResponseType: model.ResponseSiNoParcial, Weight: 0.15, IsRequired: true},
	{ID: "tech_2", Phase: model.PhaseFeasibility, Pillar: model.PillarEnvironmental, Category: "Evaluación Técnica",
		Text: "¿Existe un estudio de suelos que garantice la viabilidad y seguridad de la obra?", ResponseType: model.ResponseSiNoParcial, Weight: 0.15, IsRequired: true},
	{ID: "tech_3", Phase: model.PhaseFeasibility, Pillar: model.PillarEnvironmental, Category: "Evaluación Técnica",
		Text: "¿Se cuenta con confirmación de disponibilidad de agua, energía y gas en el predio?", ResponseType: model.ResponseSiNoParcial, Weight: 0.15, IsRequired: true},
	{ID: "tech_5", Phase: model.PhaseDesign, Pillar: model.PillarGovernance, Category: "Evaluación Técnica",
		Text: "¿El proyecto dispone de licencia constructiva en condiciones adecuadas?", ResponseType: model.ResponseSiNoParcial, Weight: 0.15, IsRequired: true},
	{ID: "tech_6", Phase: model.PhaseDesign, Pillar: model.PillarEnvironmental, Category: "Evaluación Técnica",
		Text: "¿Se han identificado y evaluado los riesgos de construcción asociados al predio?", ResponseType: model.ResponseSiNoParcial, Weight: 0.15, IsRequired: true},
	{ID: "tech_8", Phase: model.PhaseDesign, Pillar: model.PillarEnvironmental, Category: "Evaluación Técnica",
		Text: "¿El diseño técnico contempla urbanismo, arquitectura y trazado vial?", ResponseType: model.ResponseSiNoParcial, Weight: 0.15, IsRequired: true},
	{ID: "tech_9", Phase: model.PhaseDesign, Pillar: model.PillarGovernance, Category: "Evaluación Técnica",
		Text: "¿El proyecto cuenta con un presupuesto detallado y validado?", ResponseType: model.ResponseSiNoParcial, Weight: 0.15, IsRequired: true},
	{ID: "tech_10", Phase: model.PhaseConstruction, Pillar: model.PillarGovernance, Category: "Evaluación Técnica",
		Text: "¿Se tiene una estimación clara y real de los tiempos del proyecto?", ResponseType: model.ResponseSiNoParcial, Weight: 0.15, IsRequired: true},
	{ID: "tech_11", Phase: model.PhaseConstruction, Pillar: model.PillarEnvironmental, Category: "Evaluación Técnica",
		Text: "¿Se dispone de un plan de cerramiento perimetral para el predio?", ResponseType: model.ResponseSiNoParcial, Weight: 0.15, IsRequired: true},

	// Normativa
	{ID: "norm_1", Phase: model.PhaseFeasibility, Pillar: model.PillarGovernance, Category: "Normativa",
		Text: "¿El proyecto incluye medidas de seguridad física y ciberseguridad en todas sus fases?", ResponseType: model.ResponseSiNoParcial, Weight: 0.1, IsRequired: true},
	{ID: "norm_5", Phase: model.PhaseConstruction, Pillar: model.PillarGovernance, Category: "Normativa",
		Text: "¿La ejecución de la obra cumple la normativa urbanística aplicable?", ResponseType: model.ResponseSiNoParcial, Weight: 0.1, IsRequired: true},
	{ID: "norm_6", Phase: model.PhaseFeasibility, Pillar: model.PillarGovernance, Category: "Normativa",
		Text: "¿El inmueble cuenta con un estudio de títulos?", ResponseType: model.ResponseSiNo, Weight: 0.1, IsRequired: true},
	{ID: "norm_7", Phase: model.PhaseFeasibility, Pillar: model.PillarGovernance, Category: "Normativa",
		Text: "¿El inmueble tiene algún gravamen? ¿Cuál?", ResponseType: model.ResponseSiNoCual, Weight: 0.1, IsRequired: true},
	{ID: "norm_8", Phase: model.PhaseFeasibility, Pillar: model.PillarGovernance, Category: "Normativa",
		Text: "¿El inmueble tiene alguna limitación a la propiedad? ¿Cuál?", ResponseType: model.ResponseSiNoCual, Weight: 0.1, IsRequired: true},

	// Legal
	{ID: "legal_1", Phase: model.PhaseFeasibility, Pillar: model.PillarSocial, Category: "Evaluación Legal",
		Text: "¿La sociedad o el representante legal tienen alguna restricción legal para la adquisición del inmueble? ¿Cuál?", ResponseType: model.ResponseSiNoCual, Weight: 0.1, IsRequired: true},
	{ID: "legal_3", Phase: model.PhaseDesign, Pillar: model.PillarGovernance, Category: "Evaluación Legal",
		Text: "¿El propietario del inmueble cuenta con un estudio de debida diligencia?", ResponseType: model.ResponseSiNo, Weight: 0.1, IsRequired: true},
	{ID: "legal_4", Phase: model.PhaseConstruction, Pillar: model.PillarGovernance, Category: "Evaluación Legal",
		Text: "¿El inmueble se encuentra al día en el pago del impuesto predial?", ResponseType: model.ResponseSiNo, Weight: 0.1, IsRequired: true},

	// Análisis económico
	{ID: "econ_1", Phase: model.PhaseFeasibility, Pillar: model.PillarGovernance, Category: "Análisis Económico",
		Text: "¿Qué factores económicos nacionales han sido analizados?", ResponseType: model.ResponseTexto, Weight: 0.12, IsRequired: false},
	{ID: "econ_3", Phase: model.PhaseFeasibility, Pillar: model.PillarEnvironmental, Category: "Análisis Económico",
		Text: "¿Qué hallazgos principales se obtuvieron del estudio de mercado?", ResponseType: model.ResponseTexto, Weight: 0.12, IsRequired: false},
	{ID: "econ_4", Phase: model.PhaseFeasibility, Pillar: model.PillarSocial, Category: "Análisis Económico",
		Text: "¿Qué clusters económicos o industriales existen en la región?", ResponseType: model.ResponseTexto, Weight: 0.12, IsRequired: false},
	{ID: "econ_5", Phase: model.PhaseFeasibility, Pillar: model.PillarSocial, Category: "Análisis Económico",
		Text: "¿Quiénes son los clientes potenciales identificados y qué necesidades presentan?", ResponseType: model.ResponseTexto, Weight: 0.12, IsRequired: false},

	// Riesgos ASG
	{ID: "risk_amb_1", Phase: model.PhaseFeasibility, Pillar: model.PillarEnvironmental, Category: "Riesgos ASG",
		Text: "Riesgo por huella de carbono y emisiones del proyecto", ResponseType: model.ResponseEscalaRiesgo, Weight: 0.2, IsRequired: true},
	{ID: "risk_amb_2", Phase: model.PhaseFeasibility, Pillar: model.PillarEnvironmental, Category: "Riesgos ASG",
		Text: "Riesgo de contaminación del suelo y agua", ResponseType: model.ResponseEscalaRiesgo, Weight: 0.2, IsRequired: true},
	{ID: "risk_amb_3", Phase: model.PhaseDesign, Pillar: model.PillarEnvironmental, Category: "Riesgos ASG",
		Text: "Riesgo de cambio climático y desastres naturales", ResponseType: model.ResponseEscalaRiesgo, Weight: 0.2, IsRequired: true},
	{ID: "risk_soc_1", Phase: model.PhaseFeasibility, Pillar: model.PillarSocial, Category: "Riesgos ASG",
		Text: "Riesgo de impacto en la comunidad local", ResponseType: model.ResponseEscalaRiesgo, Weight: 0.2, IsRequired: true},
	{ID: "risk_soc_2", Phase: model.PhaseDesign, Pillar: model.PillarSocial, Category: "Riesgos ASG",
		Text: "Riesgo de acceso a servicios básicos", ResponseType: model.ResponseEscalaRiesgo, Weight: 0.2, IsRequired: true},
	{ID: "risk_soc_3", Phase: model.PhaseConstruction, Pillar: model.PillarSocial, Category: "Riesgos ASG",
		Text: "Riesgo de vulneración de derechos humanos en la cadena de contratación", ResponseType: model.ResponseEscalaRiesgo, Weight: 0.2, IsRequired: true},

	// Construcción y operación
	{ID: "const_1", Phase: model.PhaseConstruction, Pillar: model.PillarEnvironmental, Category: "Operación",
		Text: "Porcentaje de avance de obra ejecutado según cronograma", ResponseType: model.ResponseNumero, Weight: 0.15, IsRequired: false},
	{ID: "const_2", Phase: model.PhaseConstruction, Pillar: model.PillarSocial, Category: "Operación",
		Text: "Nivel de satisfacción de la comunidad vecina con la obra", ResponseType: model.ResponseEscala, Weight: 0.15, IsRequired: false},
	{ID: "const_3", Phase: model.PhaseConstruction, Pillar: model.PillarGovernance, Category: "Operación",
		Text: "Modalidad de contratación de la obra", ResponseType: model.ResponseSeleccion,
		Options: []string{"Llave en mano", "Precios unitarios", "Administración delegada"}, Weight: 0.1, IsRequired: false},
	{ID: "const_4", Phase: model.PhaseConstruction, Pillar: model.PillarSocial, Category: "Operación",
		Text: "¿Se contrata mano de obra local para la ejecución del proyecto?", ResponseType: model.ResponseSiNo, Weight: 0.15, IsRequired: false},
	{ID: "design_1", Phase: model.PhaseDesign, Pillar: model.PillarSocial, Category: "Diseño",
		Text: "Calidad de los espacios comunes y accesibilidad del diseño", ResponseType: model.ResponseEscala, Weight: 0.15, IsRequired: false},
}
