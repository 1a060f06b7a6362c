// Package i18n holds the static UI string tables of the dashboard.
package i18n

// DefaultLanguage is used for unknown language codes
const DefaultLanguage = "en"

// Translations maps a string key to its text in one language
type Translations map[string]string

// Text returns the text for key, or the key itself when the table has no entry
func (t Translations) Text(key string) string {
	if s, ok := t[key]; ok {
		return s
	}
	return key
}

// Language describes a selectable language
type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var languages = []Language{
	{Code: "en", Label: "English"},
	{Code: "es", Label: "Español"},
	{Code: "pt", Label: "Português"},
}

// Supported returns the selectable languages in display order
func Supported() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// IsSupported reports whether lang has its own table
func IsSupported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Get returns the table for lang. Unknown codes get the English table.
func Get(lang string) Translations {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[DefaultLanguage]
}

var tables = map[string]Translations{
	"en": {
		"appTitle": "WhatsApp Helpdesk Manager",
		"welcome":  "Welcome",
		"logout":   "Logout",
		"profile":  "Profile",
		"language": "Language",

		"attendants":  "Attendants",
		"clients":     "Clients",
		"bots":        "Bots",
		"instances":   "Instances",
		"chatHistory": "Chat History",

		"online":       "online",
		"offline":      "offline",
		"connected":    "connected",
		"disconnected": "disconnected",

		"cancel":         "Cancel",
		"add":            "Add",
		"close":          "Close",
		"delete":         "Delete",
		"name":           "Name",
		"phoneNumber":    "Phone Number",
		"instanceNumber": "Instance Number",
		"pairingQR":      "Pairing QR",

		"addNewAttendant": "Add New Attendant",
		"addNewClient":    "Add New Client",
		"addNewBot":       "Add New Bot",
		"addNewInstance":  "Add New Instance",

		"clientChats":   "Client Chats",
		"selectChat":    "Select a chat to view history",
		"unknownClient": "Unknown Client",

		"userProfile": "User Profile",
		"fullName":    "Full Name",
		"role":        "Role",

		"admin":      "Administrator",
		"attendant":  "Attendant",
		"supervisor": "Supervisor",

		"whatsappInstances": "WhatsApp Instances",

		"loginTitle":       "WhatsApp Helpdesk",
		"loginSubtitle":    "Manager Login",
		"loginButton":      "Login to Dashboard",
		"loginDescription": "Manage your WhatsApp support team efficiently",
		"fillAllFields":    "Please fill in all fields",
		"validPhoneNumber": "Please enter a valid phone number",
		"dismiss":          "Dismiss",

		"personalInformation": "Personal Information",
		"saveChanges":         "Save Changes",
		"edit":                "Edit",
		"backToDashboard":     "Back to Dashboard",
		"workingHours":        "Working Hours",
		"available":           "Available",
		"startTime":           "Start",
		"endTime":             "End",

		"monday":    "Monday",
		"tuesday":   "Tuesday",
		"wednesday": "Wednesday",
		"thursday":  "Thursday",
		"friday":    "Friday",
		"saturday":  "Saturday",
		"sunday":    "Sunday",
	},
	"es": {
		"appTitle": "Gestor de Mesa de Ayuda WhatsApp",
		"welcome":  "Bienvenido",
		"logout":   "Cerrar Sesión",
		"profile":  "Perfil",
		"language": "Idioma",

		"attendants":  "Agentes",
		"clients":     "Clientes",
		"bots":        "Bots",
		"instances":   "Instancias",
		"chatHistory": "Historial de Chat",

		"online":       "en línea",
		"offline":      "desconectado",
		"connected":    "conectado",
		"disconnected": "desconectado",

		"cancel":         "Cancelar",
		"add":            "Agregar",
		"close":          "Cerrar",
		"delete":         "Eliminar",
		"name":           "Nombre",
		"phoneNumber":    "Número de Teléfono",
		"instanceNumber": "Número de Instancia",
		"pairingQR":      "QR de Vinculación",

		"addNewAttendant": "Agregar Nuevo Agente",
		"addNewClient":    "Agregar Nuevo Cliente",
		"addNewBot":       "Agregar Nuevo Bot",
		"addNewInstance":  "Agregar Nueva Instancia",

		"clientChats":   "Chats de Clientes",
		"selectChat":    "Selecciona un chat para ver el historial",
		"unknownClient": "Cliente Desconocido",

		"userProfile": "Perfil de Usuario",
		"fullName":    "Nombre Completo",
		"role":        "Rol",

		"admin":      "Administrador",
		"attendant":  "Agente",
		"supervisor": "Supervisor",

		"whatsappInstances": "Instancias de WhatsApp",

		"loginTitle":       "Mesa de Ayuda WhatsApp",
		"loginSubtitle":    "Inicio de Sesión del Gestor",
		"loginButton":      "Iniciar Sesión en el Panel",
		"loginDescription": "Gestiona tu equipo de soporte de WhatsApp eficientemente",
		"fillAllFields":    "Por favor completa todos los campos",
		"validPhoneNumber": "Por favor ingresa un número de teléfono válido",
		"dismiss":          "Descartar",

		"personalInformation": "Información Personal",
		"saveChanges":         "Guardar Cambios",
		"edit":                "Editar",
		"backToDashboard":     "Volver al Panel",
		"workingHours":        "Horario de Atención",
		"available":           "Disponible",
		"startTime":           "Inicio",
		"endTime":             "Fin",

		"monday":    "Lunes",
		"tuesday":   "Martes",
		"wednesday": "Miércoles",
		"thursday":  "Jueves",
		"friday":    "Viernes",
		"saturday":  "Sábado",
		"sunday":    "Domingo",
	},
	"pt": {
		"appTitle": "Gerenciador de Helpdesk WhatsApp",
		"welcome":  "Bem-vindo",
		"logout":   "Sair",
		"profile":  "Perfil",
		"language": "Idioma",

		"attendants":  "Atendentes",
		"clients":     "Clientes",
		"bots":        "Bots",
		"instances":   "Instâncias",
		"chatHistory": "Histórico de Chat",

		"online":       "online",
		"offline":      "offline",
		"connected":    "conectado",
		"disconnected": "desconectado",

		"cancel":         "Cancelar",
		"add":            "Adicionar",
		"close":          "Fechar",
		"delete":         "Excluir",
		"name":           "Nome",
		"phoneNumber":    "Número de Telefone",
		"instanceNumber": "Número da Instância",
		"pairingQR":      "QR de Pareamento",

		"addNewAttendant": "Adicionar Novo Atendente",
		"addNewClient":    "Adicionar Novo Cliente",
		"addNewBot":       "Adicionar Novo Bot",
		"addNewInstance":  "Adicionar Nova Instância",

		"clientChats":   "Chats de Clientes",
		"selectChat":    "Selecione um chat para ver o histórico",
		"unknownClient": "Cliente Desconhecido",

		"userProfile": "Perfil do Usuário",
		"fullName":    "Nome Completo",
		"role":        "Função",

		"admin":      "Administrador",
		"attendant":  "Atendente",
		"supervisor": "Supervisor",

		"whatsappInstances": "Instâncias do WhatsApp",

		"loginTitle":       "Helpdesk WhatsApp",
		"loginSubtitle":    "Login do Gerenciador",
		"loginButton":      "Entrar no Painel",
		"loginDescription": "Gerencie sua equipe de suporte WhatsApp eficientemente",
		"fillAllFields":    "Por favor preencha todos os campos",
		"validPhoneNumber": "Por favor insira um número de telefone válido",
		"dismiss":          "Dispensar",

		"personalInformation": "Informações Pessoais",
		"saveChanges":         "Salvar Alterações",
		"edit":                "Editar",
		"backToDashboard":     "Voltar ao Painel",
		"workingHours":        "Horário de Atendimento",
		"available":           "Disponível",
		"startTime":           "Início",
		"endTime":             "Fim",

		"monday":    "Segunda-feira",
		"tuesday":   "Terça-feira",
		"wednesday": "Quarta-feira",
		"thursday":  "Quinta-feira",
		"friday":    "Sexta-feira",
		"saturday":  "Sábado",
		"sunday":    "Domingo",
	},
}
