package lox

func NewLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: map[string]interface{}{}}
}

type LoxInstance struct {
	class  *LoxClass
	fields map[string]interface{}
}

func (this *LoxInstance) Get(name *Token) (interface{}, error) {
	if value, ok := this.fields[name.Lexeme]; ok {
		return value, nil
	}
	if method := this.class.findMethod(name.Lexeme); method != nil {
		return method.(*LoxFunction).Bind(this), nil
	}
	return nil, NewRuntimeError(name, "undefined property '"+name.Lexeme+"'.")
}

func (this *LoxInstance) Set(name *Token, value interface{}) {
	this.fields[name.Lexeme] = value
}

func (this LoxInstance) String() string {
	return "<instance of " + this.class.name + ">"
}
