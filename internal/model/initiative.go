package model

// Initiative 公益方向标签，项目和媒体素材各挂一个必选 + 一个可选
type Initiative string

const (
	InitiativeEducational    Initiative = "Educational Initiatives"
	InitiativeHealthcare     Initiative = "Healthcare Initiatives"
	InitiativeGenderEquality Initiative = "Gender Equality Initiatives"
	InitiativeChildcare      Initiative = "Childcare Initiatives"
	InitiativeSustainability Initiative = "Sustainability Initiatives"
	InitiativeRelief         Initiative = "Relief to the Underprivileged"
	InitiativeDisaster       Initiative = "Disaster Management"
	InitiativeIgniteChange   Initiative = "Ignite Change Initiatives"
)

var AllInitiatives = []Initiative{
	InitiativeEducational,
	InitiativeHealthcare,
	InitiativeGenderEquality,
	InitiativeChildcare,
	InitiativeSustainability,
	InitiativeRelief,
	InitiativeDisaster,
	InitiativeIgniteChange,
}

func (i Initiative) Valid() bool {
	for _, v := range AllInitiatives {
		if i == v {
			return true
		}
	}
	return false
}
